package mock

import "github.com/jpsouza/lattes"

var _ lattes.SchemaValidator = (*SchemaValidator)(nil)

// SchemaValidator is a mock implementation of lattes.SchemaValidator.
type SchemaValidator struct {
	ValidateFn func(doc *lattes.Document) error
}

func (v *SchemaValidator) Validate(doc *lattes.Document) error {
	return v.ValidateFn(doc)
}
