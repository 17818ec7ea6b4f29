// Package jsonschema validates assembled documents against the canonical
// closed output contract using the santhosh-tekuri/jsonschema library.
package jsonschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jpsouza/lattes"
)

// canonicalSchema is the default contract, pinned to the current schema
// version. A newer external contract can be supplied via NewValidatorFromFile.
//
//go:embed schema.json
var canonicalSchema []byte

var _ lattes.SchemaValidator = (*Validator)(nil)

// Validator checks documents against a compiled JSON schema. The contract is
// closed: unknown fields are violations, not extensions.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a Validator using the embedded canonical schema.
func NewValidator() (*Validator, error) {
	return compile("document.schema.json", canonicalSchema)
}

// NewValidatorFromFile creates a Validator from an external schema document.
func NewValidatorFromFile(path string) (*Validator, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, lattes.Errorf(lattes.EINVALID, "failed to read schema %q: %v", path, err)
	}
	return compile("document.schema.json", b)
}

func compile(name string, b []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		return nil, lattes.Errorf(lattes.EINVALID, "failed to add schema resource: %v", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, lattes.Errorf(lattes.EINVALID, "failed to compile schema: %v", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks the document's JSON form against the schema. It succeeds
// silently or fails with the offending field's location and constraint.
func (v *Validator) Validate(doc *lattes.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to marshal document: %v", err)
	}

	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return lattes.Errorf(lattes.EINTERNAL, "failed to unmarshal document JSON: %v", err)
	}

	if err := v.schema.Validate(data); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := leafCause(ve)
			return lattes.Errorf(lattes.EUNPROCESSABLE, "schema violation at %s: %s",
				instanceLocation(leaf), leaf.Message)
		}
		return lattes.Errorf(lattes.EUNPROCESSABLE, "schema violation: %v", err)
	}
	return nil
}

// leafCause descends to the most specific violation in the error tree.
func leafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func instanceLocation(ve *jsonschema.ValidationError) string {
	if ve.InstanceLocation == "" {
		return "document root"
	}
	return ve.InstanceLocation
}
