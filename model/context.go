package model

import "fmt"

// MemberKind distinguishes dimensional member declarations.
type MemberKind string

const (
	// MemberExplicit is an enumerated member from the taxonomy.
	MemberExplicit MemberKind = "explicit"
	// MemberTyped is a typed member whose value is document-supplied.
	MemberTyped MemberKind = "typed"
)

// PeriodKind distinguishes instant from duration reporting periods.
type PeriodKind string

const (
	// PeriodInstant is a point-in-time period.
	PeriodInstant PeriodKind = "instant"
	// PeriodDuration is a date-range period.
	PeriodDuration PeriodKind = "duration"
)

// Dimension is one dimensional qualifier on a context's segment or
// scenario axis. Owned exclusively by the Context that declares it.
type Dimension struct {
	// Name is the qualified name of the dimension
	// (e.g. "us-gaap:StatementBusinessSegmentsAxis").
	Name string `json:"dimension_name"`

	// Member is the qualified member name for explicit members, or the
	// raw member value for typed members.
	Member string `json:"member_name"`

	Kind MemberKind `json:"member_kind"`

	// DefaultMember marks the dimension's default member.
	DefaultMember bool `json:"default_member,omitempty"`
}

// Context identifies the reporting period, entity, and dimensional
// scenario facts are reported against. Facts reference contexts by ID.
type Context struct {
	// ID is the context identifier, unique within one document.
	ID string `json:"context_id"`

	// Entity is the reporting entity identifier (CIK, LEI, or ticker).
	Entity string `json:"entity_identifier"`

	// EntityScheme is the scheme URI qualifying the entity identifier.
	EntityScheme string `json:"entity_scheme,omitempty"`

	Period PeriodKind `json:"period_type"`

	// PeriodStart is set only for duration periods.
	PeriodStart *Date `json:"period_start,omitempty"`

	// PeriodEnd is the end date for durations and the instant date for
	// instant periods. Always present.
	PeriodEnd Date `json:"period_end"`

	// SegmentDimensions and ScenarioDimensions preserve declaration order;
	// presentation order can carry semantic grouping in some filings.
	SegmentDimensions  []Dimension `json:"segment_dimensions,omitempty"`
	ScenarioDimensions []Dimension `json:"scenario_dimensions,omitempty"`
}

// Validate checks the period invariants: an instant period has no start
// date, and a duration period starts no later than it ends.
func (c Context) Validate() error {
	switch c.Period {
	case PeriodInstant:
		if c.PeriodStart != nil {
			return fmt.Errorf("context %s: instant period must not have a start date", c.ID)
		}
	case PeriodDuration:
		if c.PeriodStart == nil {
			return fmt.Errorf("context %s: duration period requires a start date", c.ID)
		}
		if c.PeriodStart.After(c.PeriodEnd) {
			return fmt.Errorf("context %s: period start %s is after end %s",
				c.ID, c.PeriodStart, c.PeriodEnd)
		}
	default:
		return fmt.Errorf("context %s: unknown period kind %q", c.ID, c.Period)
	}
	return nil
}

// IsInstant reports whether the context covers a point in time.
func (c Context) IsInstant() bool {
	return c.Period == PeriodInstant
}
