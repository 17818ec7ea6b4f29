package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jpsouza/lattes"
	"github.com/jpsouza/lattes/mock"
	latslog "github.com/jpsouza/lattes/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSegmenter_Segment(t *testing.T) {
	t.Parallel()

	t.Run("logs subject and counts on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Segmenter{
			SegmentFn: func(markup string) (*lattes.Profile, error) {
				return &lattes.Profile{
					Subject: lattes.Subject{LattesID: "1234567890123456"},
					Sections: []lattes.SectionBlock{
						{Items: []lattes.ItemBlock{{Ordinal: 1}, {Ordinal: 2}}},
						{Items: []lattes.ItemBlock{{Ordinal: 1}}},
					},
				}, nil
			},
		}

		segmenter := latslog.NewLoggingSegmenter(inner, logger)
		profile, err := segmenter.Segment("<html></html>")
		require.NoError(t, err)
		require.NotNil(t, profile)

		output := buf.String()
		assert.Contains(t, output, "segmentation")
		assert.Contains(t, output, "subject=1234567890123456")
		assert.Contains(t, output, "sections=2")
		assert.Contains(t, output, "items=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Segmenter{
			SegmentFn: func(markup string) (*lattes.Profile, error) {
				return nil, lattes.Errorf(lattes.EUNPROCESSABLE, "no subject identity or production sections found")
			},
		}

		segmenter := latslog.NewLoggingSegmenter(inner, logger)
		_, err := segmenter.Segment("not a profile")
		require.Error(t, err)
		assert.Equal(t, lattes.EUNPROCESSABLE, lattes.ErrorCode(err))

		output := buf.String()
		assert.Contains(t, output, "segmentation failed")
		assert.Contains(t, output, "no subject identity")
	})
}
