package resolve

import (
	"strings"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// Unit resolves one unit declaration. The identifier is always preserved,
// even for unrecognized shapes: downstream fact resolution depends on the
// declared identifier existing.
func Unit(d *loader.Document, n *xmlquery.Node, c *xbrl.Collector) model.Unit {
	id := loader.Attr(n, "id")
	if id == "" {
		c.Errorf(xbrl.CodeStructure, "unit", "unit declaration is missing its id attribute")
	}

	if divide := loader.FindChild(n, "divide"); divide != nil {
		return divideUnit(d, divide, id, c)
	}

	measures := measureChildren(n)
	switch len(measures) {
	case 1:
		return singleMeasureUnit(d, measures[0], id, c)
	case 0:
		c.Errorf(xbrl.CodeUnitShape, id, "unit %q declares no measure", id)
		return model.Unit{ID: id, Kind: model.UnitOther}
	default:
		c.Errorf(xbrl.CodeUnitShape, id, "unit %q declares %d measures without a divide; expected one", id, len(measures))
		return model.Unit{ID: id, Kind: model.UnitOther}
	}
}

// singleMeasureUnit classifies a one-measure unit: an ISO currency code
// makes it monetary, the shares/pure measures their own kinds, percent
// notation percent, anything else other.
func singleMeasureUnit(d *loader.Document, measure *xmlquery.Node, id string, c *xbrl.Collector) model.Unit {
	raw := strings.TrimSpace(loader.Text(measure))
	prefix, local := splitMeasure(raw)

	switch {
	case isISO4217(d, prefix):
		code := strings.ToUpper(local)
		u := model.Unit{ID: id, Kind: model.UnitMonetary, Currency: code}
		if err := u.Validate(); err != nil {
			c.Errorf(xbrl.CodeUnitShape, id, "unit %q has malformed currency measure %q", id, raw)
			return model.Unit{ID: id, Kind: model.UnitOther}
		}
		return u
	case strings.EqualFold(local, "shares"):
		return model.Unit{ID: id, Kind: model.UnitShares}
	case strings.EqualFold(local, "pure"):
		return model.Unit{ID: id, Kind: model.UnitPure}
	case strings.EqualFold(local, "percent"):
		return model.Unit{ID: id, Kind: model.UnitPercent}
	default:
		c.Errorf(xbrl.CodeUnitShape, id, "unit %q has unrecognized measure %q", id, raw)
		return model.Unit{ID: id, Kind: model.UnitOther}
	}
}

// divideUnit resolves a ratio unit: exactly one numerator measure over
// exactly one denominator measure.
func divideUnit(d *loader.Document, divide *xmlquery.Node, id string, c *xbrl.Collector) model.Unit {
	nums := measuresUnder(divide, "unitNumerator")
	dens := measuresUnder(divide, "unitDenominator")

	if len(nums) != 1 || len(dens) != 1 {
		c.Errorf(xbrl.CodeUnitShape, id,
			"unit %q has a divide with %d numerator and %d denominator measures; expected one of each",
			id, len(nums), len(dens))
		return model.Unit{ID: id, Kind: model.UnitOther}
	}

	return model.Unit{
		ID:          id,
		Kind:        model.UnitComposite,
		Numerator:   measureCode(d, nums[0]),
		Denominator: measureCode(d, dens[0]),
	}
}

// measureCode normalizes a measure to its code: ISO currency measures are
// uppercased, everything else keeps its local part as written.
func measureCode(d *loader.Document, measure *xmlquery.Node) string {
	raw := strings.TrimSpace(loader.Text(measure))
	prefix, local := splitMeasure(raw)
	if isISO4217(d, prefix) {
		return strings.ToUpper(local)
	}
	return local
}

// isISO4217 reports whether a measure prefix resolves to the ISO-4217
// namespace, by the document's own declarations or by convention.
func isISO4217(d *loader.Document, prefix string) bool {
	if prefix == "" {
		return false
	}
	if uri, ok := d.Namespaces()[prefix]; ok {
		return uri == loader.NSISO4217
	}
	return prefix == "iso4217"
}

func splitMeasure(raw string) (prefix, local string) {
	if p, l, ok := strings.Cut(raw, ":"); ok {
		return p, l
	}
	return "", raw
}

func measureChildren(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for _, child := range loader.ChildElements(n) {
		if child.Data == "measure" {
			out = append(out, child)
		}
	}
	return out
}

func measuresUnder(divide *xmlquery.Node, local string) []*xmlquery.Node {
	side := loader.FindChild(divide, local)
	if side == nil {
		return nil
	}
	return measureChildren(side)
}
