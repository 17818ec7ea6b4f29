// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import "github.com/jpsouza/lattes"

var _ lattes.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of lattes.Segmenter.
type Segmenter struct {
	SegmentFn func(markup string) (*lattes.Profile, error)
}

func (s *Segmenter) Segment(markup string) (*lattes.Profile, error) {
	return s.SegmentFn(markup)
}
