package model

import (
	"time"

	"github.com/google/uuid"
)

// Instance is the aggregate root for one parsed XBRL document. It is
// constructed once as the terminal output of a parse call, is immutable
// afterwards, and is owned by the caller.
//
// Referential integrity between facts and contexts/units is a soft
// invariant: violations are recorded in ValidationErrors rather than
// raised, because partially malformed real-world filings must remain
// inspectable.
type Instance struct {
	// ID uniquely identifies this parse result.
	ID string `json:"instance_id"`

	// FilePath is the source document path (or stream name).
	FilePath string `json:"file_path"`

	// Entity is the root entity identifier, taken from the first resolved
	// context. "UNKNOWN" when no context resolves.
	Entity string `json:"entity_identifier"`

	// FiscalPeriodFocus is the context identifier judged to carry the
	// filing's fiscal focus, when one can be inferred.
	FiscalPeriodFocus string `json:"fiscal_period_focus,omitempty"`

	// SchemaRef lists the schemaRef hrefs declared by the document.
	// Taxonomies are never loaded; the references are informational.
	SchemaRef string `json:"schema_ref,omitempty"`

	// Namespaces holds the document's own prefix to namespace-URI
	// declarations.
	Namespaces map[string]string `json:"namespace_declaration,omitempty"`

	// Contexts, Units, and Facts are in document order. Context and unit
	// identifiers are unique (first occurrence wins on duplicates).
	Contexts []Context `json:"contexts"`
	Units    []Unit    `json:"units"`
	Facts    []Fact    `json:"facts"`

	// ValidationErrors is the ordered list of collected data-quality
	// problems, as plain human-readable sentences.
	ValidationErrors []string `json:"validation_errors,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewInstance creates an empty Instance for a source path with a fresh
// identifier.
func NewInstance(filePath string) *Instance {
	return &Instance{
		ID:        uuid.NewString(),
		FilePath:  filePath,
		CreatedAt: time.Now().UTC(),
	}
}

// FactCount returns the number of facts.
func (in *Instance) FactCount() int { return len(in.Facts) }

// ContextCount returns the number of contexts.
func (in *Instance) ContextCount() int { return len(in.Contexts) }

// UnitCount returns the number of units.
func (in *Instance) UnitCount() int { return len(in.Units) }

// Valid reports whether the parse collected no validation errors.
func (in *Instance) Valid() bool { return len(in.ValidationErrors) == 0 }

// Context looks up a context by identifier.
func (in *Instance) Context(id string) (Context, bool) {
	for _, c := range in.Contexts {
		if c.ID == id {
			return c, true
		}
	}
	return Context{}, false
}

// Unit looks up a unit by identifier.
func (in *Instance) Unit(id string) (Unit, bool) {
	for _, u := range in.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}

// EqualContent reports whether two instances carry the same parsed
// content, ignoring the per-parse identifier and timestamp. Parsing the
// same document twice yields instances equal under this comparison.
func (in *Instance) EqualContent(other *Instance) bool {
	if in.FilePath != other.FilePath ||
		in.Entity != other.Entity ||
		in.FiscalPeriodFocus != other.FiscalPeriodFocus ||
		in.SchemaRef != other.SchemaRef {
		return false
	}
	if len(in.Contexts) != len(other.Contexts) ||
		len(in.Units) != len(other.Units) ||
		len(in.Facts) != len(other.Facts) ||
		len(in.ValidationErrors) != len(other.ValidationErrors) {
		return false
	}
	for i := range in.Facts {
		if !in.Facts[i].Equal(other.Facts[i]) {
			return false
		}
	}
	for i := range in.ValidationErrors {
		if in.ValidationErrors[i] != other.ValidationErrors[i] {
			return false
		}
	}
	return true
}
