package model

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Attr is one preserved XML attribute. Facts carry their original
// attributes as an ordered list rather than a map so a fact can be
// re-serialized byte-compatibly.
type Attr struct {
	// Name is the attribute name as written, including any prefix
	// (e.g. "contextRef", "xsi:nil").
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fact is one reported data point. The raw textual value is preserved
// verbatim: XBRL numeric facts carry precision semantics (decimals=-3
// means rounded to thousands) that a floating-point coercion would
// destroy, so only the precision metadata is parsed.
type Fact struct {
	// Concept is the namespace-prefixed qualified name of the reported
	// concept (e.g. "us-gaap:NetIncomeLoss").
	Concept string `json:"concept_qname"`

	// Value is the raw textual content, verbatim.
	Value string `json:"value"`

	// ContextRef names the context this fact is reported against. It is
	// preserved as written even when it does not resolve.
	ContextRef string `json:"context_ref"`

	// UnitRef names the measurement unit; empty for non-numeric concepts.
	UnitRef string `json:"unit_ref,omitempty"`

	// Decimals is the parsed decimals/precision indicator; nil when the
	// fact declares none.
	Decimals *Precision `json:"decimals,omitempty"`

	// Nil marks an explicit xsi:nil fact.
	Nil bool `json:"is_nil,omitempty"`

	// FootnoteIDs lists associated footnote identifiers in arc order.
	FootnoteIDs []string `json:"footnote_ids,omitempty"`

	// Attributes preserves the element's original attributes in document
	// order for lossless round-tripping.
	Attributes []Attr `json:"xml_attributes,omitempty"`
}

// IsNumeric reports whether the fact is numeric, indicated by the
// presence of a unit reference.
func (f Fact) IsNumeric() bool {
	return f.UnitRef != ""
}

// Validate checks the fact invariants: a nil fact has no value, and a
// non-nil numeric fact's raw value parses as a decimal number.
func (f Fact) Validate() error {
	if f.Nil {
		if f.Value != "" {
			return fmt.Errorf("fact %s: nil fact must not carry a value", f.Concept)
		}
		return nil
	}
	if f.IsNumeric() {
		if _, err := decimal.NewFromString(f.Value); err != nil {
			return fmt.Errorf("fact %s: value %q is not a decimal number", f.Concept, f.Value)
		}
	}
	return nil
}

// Equal reports value equality of two facts, including preserved
// attributes and footnote order.
func (f Fact) Equal(other Fact) bool {
	if f.Concept != other.Concept ||
		f.Value != other.Value ||
		f.ContextRef != other.ContextRef ||
		f.UnitRef != other.UnitRef ||
		f.Nil != other.Nil {
		return false
	}
	if (f.Decimals == nil) != (other.Decimals == nil) {
		return false
	}
	if f.Decimals != nil && !f.Decimals.Equal(*other.Decimals) {
		return false
	}
	return slices.Equal(f.FootnoteIDs, other.FootnoteIDs) &&
		slices.Equal(f.Attributes, other.Attributes)
}
