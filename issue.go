package xbrl

// Severity classifies how serious a collected issue is.
type Severity string

const (
	// SeverityError indicates a data-quality problem in the document.
	SeverityError Severity = "error"
	// SeverityWarning indicates a potential problem worth reviewing.
	SeverityWarning Severity = "warning"
)

// Code identifies the family of a validation issue.
type Code string

const (
	// CodeStructure indicates a structural problem (missing required
	// elements, unparseable dates, malformed declarations).
	CodeStructure Code = "structure"
	// CodeDuplicateID indicates a duplicated context or unit identifier.
	CodeDuplicateID Code = "duplicate-id"
	// CodeUnresolvedRef indicates a fact reference that does not resolve
	// to a declared context or unit.
	CodeUnresolvedRef Code = "unresolved-ref"
	// CodePeriodOrder indicates a duration context whose start date falls
	// after its end date.
	CodePeriodOrder Code = "period-order"
	// CodeUnitShape indicates an unrecognized unit measure shape.
	CodeUnitShape Code = "unit-shape"
	// CodeValue indicates an invalid fact value (non-decimal numeric,
	// non-empty nil fact).
	CodeValue Code = "value"
	// CodeDimension indicates a malformed dimensional qualifier.
	CodeDimension Code = "dimension"
)

// Issue is a single collected validation problem. Issues are never raised:
// the parse completes and the caller inspects them on the Instance.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     Code     `json:"code"`

	// Message is the human-readable description. This is the only part
	// exposed across the Instance boundary.
	Message string `json:"message"`

	// Location names where in the document the issue was found
	// (a context/unit identifier, or "fact #N (<concept>)").
	Location string `json:"location,omitempty"`
}

// IsError reports whether the issue is error severity.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// String renders the issue as the plain sentence carried on the Instance.
func (i Issue) String() string {
	if i.Location == "" {
		return i.Message
	}
	return i.Message + " (at " + i.Location + ")"
}
