// Package lattes converts exported Lattes curriculum HTML into a canonical,
// schema-validated JSON representation of a researcher's production records.
// It segments a profile into per-category sections, routes each item through
// category-specific extractors with a generic fallback, fingerprints every
// record by its raw text for stable cross-run identity, and validates the
// assembled output against a closed JSON contract.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, jsonschema/, sqlite/).
package lattes
