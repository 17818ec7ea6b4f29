package lattes

import (
	"sort"
	"strconv"
	"strings"
)

// YearOutcome classifies a record against a year filter. Excluded and
// missing are distinct, expected, non-error outcomes counted separately
// for audit.
type YearOutcome int

// Filter outcomes.
const (
	YearKept YearOutcome = iota
	YearExcluded
	YearMissing
)

// YearFilter is an inclusion set of acceptable publication years. The zero
// value and a nil *YearFilter both mean "no filter": every record is kept,
// including records with no determinable year.
type YearFilter struct {
	years map[int]struct{}
}

// NewYearFilter builds a filter from an inclusion list. An empty list
// returns an inactive filter that keeps everything.
func NewYearFilter(years []int) *YearFilter {
	if len(years) == 0 {
		return &YearFilter{}
	}
	set := make(map[int]struct{}, len(years))
	for _, y := range years {
		set[y] = struct{}{}
	}
	return &YearFilter{years: set}
}

// Active reports whether the filter restricts years at all.
func (f *YearFilter) Active() bool {
	return f != nil && len(f.years) > 0
}

// Outcome classifies a record's year. When the filter is active, a nil
// year is YearMissing and an out-of-set year is YearExcluded; an inactive
// filter keeps every record.
func (f *YearFilter) Outcome(year *int) YearOutcome {
	if !f.Active() {
		return YearKept
	}
	if year == nil {
		return YearMissing
	}
	if _, ok := f.years[*year]; ok {
		return YearKept
	}
	return YearExcluded
}

// Years returns the inclusion set in ascending order, or nil when the
// filter is inactive.
func (f *YearFilter) Years() []int {
	if !f.Active() {
		return nil
	}
	out := make([]int, 0, len(f.years))
	for y := range f.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// ParseYears parses a year-filter argument: "all" (or empty) means no
// filter, otherwise a comma-separated list of years and inclusive ranges,
// e.g. "2024,2025" or "2019-2021,2024".
func ParseYears(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}

	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := parseYearToken(lo)
			if err != nil {
				return nil, err
			}
			end, err := parseYearToken(hi)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, Errorf(EINVALID, "invalid year range %q", part)
			}
			for y := start; y <= end; y++ {
				years = append(years, y)
			}
			continue
		}
		y, err := parseYearToken(part)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, nil
}

func parseYearToken(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1000 || y > 9999 {
		return 0, Errorf(EINVALID, "invalid year %q", s)
	}
	return y, nil
}
