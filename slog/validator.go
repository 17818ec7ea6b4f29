package slog

import (
	"log/slog"
	"time"

	"github.com/jpsouza/lattes"
)

// Ensure LoggingValidator implements lattes.SchemaValidator.
var _ lattes.SchemaValidator = (*LoggingValidator)(nil)

// LoggingValidator wraps a SchemaValidator with logging of violations.
type LoggingValidator struct {
	next   lattes.SchemaValidator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next lattes.SchemaValidator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs the outcome.
func (v *LoggingValidator) Validate(doc *lattes.Document) error {
	begin := time.Now()
	err := v.next.Validate(doc)
	if err != nil {
		v.logger.Warn("schema validation failed",
			"subject", doc.Subject.LattesID,
			"error", lattes.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return err
	}
	v.logger.Debug("schema validation",
		"subject", doc.Subject.LattesID,
		"records", doc.TotalRecords(),
		"duration", time.Since(begin),
	)
	return nil
}
