// Package fs provides file-based input discovery and output storage for
// batch runs.
package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jpsouza/lattes"
)

// filenameIDRe matches the <lattesId>__<slug>.html input naming convention.
var filenameIDRe = regexp.MustCompile(`^(\d{16})__`)

// DiscoverProfiles lists the HTML profile exports in a directory, sorted by
// filename so batch runs process inputs in a stable order. macOS resource
// fork droppings ("._" prefix) are skipped.
func DiscoverProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, lattes.Errorf(lattes.ENOTFOUND, "failed to read input directory %q: %v", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "._") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// SubjectIDFromFilename extracts the Lattes ID from the input naming
// convention, empty when the filename does not carry one. A filename ID
// takes priority over the ID found inside the document.
func SubjectIDFromFilename(name string) string {
	m := filenameIDRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return ""
	}
	return m[1]
}

// ReadProfile reads one profile export as a string.
func ReadProfile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", lattes.Errorf(lattes.ENOTFOUND, "failed to read profile %q: %v", path, err)
	}
	return string(b), nil
}
