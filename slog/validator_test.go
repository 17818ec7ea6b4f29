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

func TestLoggingValidator_Validate(t *testing.T) {
	t.Parallel()

	doc := &lattes.Document{
		SchemaVersion: lattes.SchemaVersion,
		Subject:       lattes.Subject{LattesID: "1234567890123456"},
	}

	t.Run("silent success stays below info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SchemaValidator{
			ValidateFn: func(doc *lattes.Document) error { return nil },
		}

		validator := latslog.NewLoggingValidator(inner, logger)
		require.NoError(t, validator.Validate(doc))

		// The default handler level is info, so the debug line is dropped.
		assert.Empty(t, buf.String())
	})

	t.Run("logs the violation on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SchemaValidator{
			ValidateFn: func(doc *lattes.Document) error {
				return lattes.Errorf(lattes.EUNPROCESSABLE, "schema violation at /subject/lattesId: does not match pattern")
			},
		}

		validator := latslog.NewLoggingValidator(inner, logger)
		err := validator.Validate(doc)
		require.Error(t, err)
		assert.Equal(t, lattes.EUNPROCESSABLE, lattes.ErrorCode(err))

		output := buf.String()
		assert.Contains(t, output, "schema validation failed")
		assert.Contains(t, output, "subject=1234567890123456")
		assert.Contains(t, output, "/subject/lattesId")
	})
}
