package model

import (
	"fmt"
	"regexp"
)

// UnitKind classifies a measurement unit.
type UnitKind string

const (
	// UnitMonetary is a single ISO-4217 currency measure.
	UnitMonetary UnitKind = "monetary"
	// UnitShares is the xbrli:shares measure.
	UnitShares UnitKind = "shares"
	// UnitPure is the dimensionless xbrli:pure measure.
	UnitPure UnitKind = "pure"
	// UnitPercent is a percent-notation measure.
	UnitPercent UnitKind = "percent"
	// UnitComposite is a ratio of exactly two measures (e.g. USD/share).
	UnitComposite UnitKind = "composite"
	// UnitOther is any unrecognized or unresolvable measure shape.
	UnitOther UnitKind = "other"
)

// iso4217Pattern matches a three-letter ISO-4217 currency code.
var iso4217Pattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Unit is one measurement unit declaration. Facts reference units by ID;
// a unit is never dropped even when its shape is unrecognized, so
// downstream reference resolution keeps working.
type Unit struct {
	// ID is the unit identifier, unique within one document.
	ID string `json:"unit_id"`

	Kind UnitKind `json:"unit_type"`

	// Currency is the ISO-4217 code for monetary units.
	Currency string `json:"iso_currency_code,omitempty"`

	// Numerator and Denominator are the measure codes of a composite
	// (ratio) unit, e.g. "USD" per "SHARES".
	Numerator   string `json:"numerator_iso_code,omitempty"`
	Denominator string `json:"denominator_iso_code,omitempty"`
}

// Validate checks the kind-specific invariants: monetary units carry a
// well-formed ISO-4217 code and composite units carry both ratio codes.
func (u Unit) Validate() error {
	switch u.Kind {
	case UnitMonetary:
		if !iso4217Pattern.MatchString(u.Currency) {
			return fmt.Errorf("unit %s: %q is not an ISO-4217 currency code", u.ID, u.Currency)
		}
	case UnitComposite:
		if u.Numerator == "" || u.Denominator == "" {
			return fmt.Errorf("unit %s: composite unit requires numerator and denominator codes", u.ID)
		}
	case UnitShares, UnitPure, UnitPercent, UnitOther:
		// No additional payload.
	default:
		return fmt.Errorf("unit %s: unknown unit kind %q", u.ID, u.Kind)
	}
	return nil
}
