package model

import (
	"fmt"
	"strconv"
)

// infToken is the XBRL sentinel for unbounded precision.
const infToken = "INF"

// Precision is the decimals/precision indicator of a numeric fact: either
// a signed digit count (decimals="-6" means rounded to millions) or the
// exact sentinel (decimals="INF"). An absent indicator is represented as a
// nil *Precision, making this a tagged optional rather than an overloaded
// integer.
type Precision struct {
	// Digits is the signed decimals value. Meaningless when Exact is set.
	Digits int
	// Exact marks infinite precision ("INF").
	Exact bool
}

// ParsePrecision parses a decimals/precision attribute value.
func ParsePrecision(s string) (*Precision, error) {
	if s == infToken {
		return &Precision{Exact: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimals value %q", s)
	}
	return &Precision{Digits: n}, nil
}

// String renders the indicator in its attribute form.
func (p Precision) String() string {
	if p.Exact {
		return infToken
	}
	return strconv.Itoa(p.Digits)
}

// Equal reports value equality.
func (p Precision) Equal(other Precision) bool {
	if p.Exact || other.Exact {
		return p.Exact == other.Exact
	}
	return p.Digits == other.Digits
}

// MarshalJSON renders "INF" for exact precision, a bare integer otherwise.
func (p Precision) MarshalJSON() ([]byte, error) {
	if p.Exact {
		return []byte(`"` + infToken + `"`), nil
	}
	return []byte(strconv.Itoa(p.Digits)), nil
}

// UnmarshalJSON accepts either the "INF" string or an integer.
func (p *Precision) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `"`+infToken+`"` {
		*p = Precision{Exact: true}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid decimals JSON: %s", s)
	}
	*p = Precision{Digits: n}
	return nil
}
