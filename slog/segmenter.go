package slog

import (
	"log/slog"
	"time"

	"github.com/jpsouza/lattes"
)

// Ensure LoggingSegmenter implements lattes.Segmenter.
var _ lattes.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with logging of segmentation results.
type LoggingSegmenter struct {
	next   lattes.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next lattes.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the section and item
// counts, or the failure.
func (s *LoggingSegmenter) Segment(markup string) (*lattes.Profile, error) {
	begin := time.Now()
	profile, err := s.next.Segment(markup)
	if err != nil {
		s.logger.Error("segmentation failed",
			"error", lattes.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	items := 0
	for _, sec := range profile.Sections {
		items += len(sec.Items)
	}
	s.logger.Info("segmentation",
		"subject", profile.Subject.LattesID,
		"sections", len(profile.Sections),
		"items", items,
		"duration", time.Since(begin),
	)
	return profile, nil
}
