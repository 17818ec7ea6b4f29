package batch

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jpsouza/lattes"
)

// Config is the YAML run configuration. Every field has a CLI flag
// counterpart; flags given explicitly on the command line win over the
// file.
type Config struct {
	InputDir  string `yaml:"inputDir"`
	OutputDir string `yaml:"outputDir"`

	// Years is the year-filter argument: "all" (or empty) for no filter,
	// otherwise a comma list of years and inclusive ranges ("2019-2021,2024").
	Years string `yaml:"years"`

	// SchemaPath points to an external schema document; empty uses the
	// embedded canonical schema.
	SchemaPath string `yaml:"schema"`

	// IndexPath points to the fingerprint index database; empty disables
	// dedup classification.
	IndexPath string `yaml:"index"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected so
// typos fail loudly instead of silently configuring nothing.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, lattes.Errorf(lattes.ENOTFOUND, "failed to read config %q: %v", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, lattes.Errorf(lattes.EINVALID, "failed to parse config %q: %v", path, err)
	}
	return &cfg, nil
}

// YearFilter builds the year filter from the configured argument.
func (c *Config) YearFilter() (*lattes.YearFilter, error) {
	years, err := lattes.ParseYears(c.Years)
	if err != nil {
		return nil, err
	}
	return lattes.NewYearFilter(years), nil
}
