package resolve

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

func firstUnit(t *testing.T, d *loader.Document) *xmlquery.Node {
	t.Helper()
	units := d.Units()
	if len(units) == 0 {
		t.Fatal("no unit element found")
	}
	return units[0]
}

func TestUnitMonetary(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="USD"><xbrli:measure>iso4217:USD</xbrli:measure></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if c.Len() != 0 {
		t.Errorf("collected %d issues; want 0: %v", c.Len(), c.Messages())
	}
	if u.Kind != model.UnitMonetary || u.Currency != "USD" {
		t.Errorf("unit = %+v; want monetary USD", u)
	}
}

func TestUnitMonetaryLowercaseNormalized(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="EUR"><xbrli:measure>iso4217:eur</xbrli:measure></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitMonetary || u.Currency != "EUR" {
		t.Errorf("unit = %+v; want monetary EUR", u)
	}
}

func TestUnitShares(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="shares"><xbrli:measure>xbrli:shares</xbrli:measure></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitShares {
		t.Errorf("Kind = %q; want shares", u.Kind)
	}
}

func TestUnitPure(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="pure"><xbrli:measure>xbrli:pure</xbrli:measure></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitPure {
		t.Errorf("Kind = %q; want pure", u.Kind)
	}
}

func TestUnitComposite(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="usd-per-share">
    <xbrli:divide>
      <xbrli:unitNumerator><xbrli:measure>iso4217:USD</xbrli:measure></xbrli:unitNumerator>
      <xbrli:unitDenominator><xbrli:measure>xbrli:shares</xbrli:measure></xbrli:unitDenominator>
    </xbrli:divide>
  </xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if c.Len() != 0 {
		t.Errorf("collected %d issues; want 0: %v", c.Len(), c.Messages())
	}
	if u.Kind != model.UnitComposite || u.Numerator != "USD" || u.Denominator != "shares" {
		t.Errorf("unit = %+v; want composite USD/shares", u)
	}
}

func TestUnitMalformedDivide(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="broken">
    <xbrli:divide>
      <xbrli:unitNumerator><xbrli:measure>iso4217:USD</xbrli:measure></xbrli:unitNumerator>
    </xbrli:divide>
  </xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitOther {
		t.Errorf("Kind = %q; want other", u.Kind)
	}
	if u.ID != "broken" {
		t.Errorf("ID = %q; identifier must survive a malformed shape", u.ID)
	}
	msgs := c.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "broken") {
		t.Errorf("Messages = %v; want one error naming the unit", msgs)
	}
}

func TestUnitNoMeasure(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="empty"></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitOther || u.ID != "empty" {
		t.Errorf("unit = %+v; want other with id kept", u)
	}
	if c.Len() != 1 {
		t.Errorf("collected %d issues; want 1", c.Len())
	}
}

func TestUnitUnrecognizedMeasure(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:unit id="odd"><xbrli:measure>us-gaap:Widget</xbrli:measure></xbrli:unit>`)

	c := xbrl.NewCollector(0)
	u := Unit(d, firstUnit(t, d), c)
	if u.Kind != model.UnitOther {
		t.Errorf("Kind = %q; want other", u.Kind)
	}
	if c.Len() != 1 {
		t.Errorf("collected %d issues; want 1", c.Len())
	}
}
