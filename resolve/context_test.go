package resolve

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// parseFiling wraps body in an instance root and returns the document.
func parseFiling(t *testing.T, body string) *loader.Document {
	t.Helper()
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
    xmlns:xbrldi="http://xbrl.org/2006/xbrldi"
    xmlns:iso4217="http://www.xbrl.org/2003/iso4217"
    xmlns:us-gaap="http://fasb.org/us-gaap/2024">` + body + `</xbrli:xbrl>`

	d, err := loader.Parse("test.xml", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func firstContext(t *testing.T, d *loader.Document) *xmlquery.Node {
	t.Helper()
	contexts := d.Contexts()
	if len(contexts) == 0 {
		t.Fatal("no context element found")
	}
	return contexts[0]
}

func TestContextInstant(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="I1">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000123456</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period><xbrli:instant>2024-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	ctx, ok := Context(d, firstContext(t, d), c)
	if !ok {
		t.Fatal("context should resolve")
	}
	if c.Len() != 0 {
		t.Errorf("collected %d issues; want 0: %v", c.Len(), c.Messages())
	}
	if ctx.ID != "I1" || ctx.Entity != "0000123456" {
		t.Errorf("ctx = %+v", ctx)
	}
	if ctx.EntityScheme != "http://www.sec.gov/CIK" {
		t.Errorf("EntityScheme = %q", ctx.EntityScheme)
	}
	if !ctx.IsInstant() || ctx.PeriodStart != nil {
		t.Errorf("period = %q start=%v; want instant without start", ctx.Period, ctx.PeriodStart)
	}
	if ctx.PeriodEnd.String() != "2024-12-31" {
		t.Errorf("PeriodEnd = %s; want 2024-12-31", ctx.PeriodEnd)
	}
}

func TestContextDuration(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="FY2024">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000123456</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:startDate>2024-01-01</xbrli:startDate>
      <xbrli:endDate>2024-12-31</xbrli:endDate>
    </xbrli:period>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	ctx, ok := Context(d, firstContext(t, d), c)
	if !ok {
		t.Fatal("context should resolve")
	}
	if ctx.Period != model.PeriodDuration {
		t.Errorf("Period = %q; want duration", ctx.Period)
	}
	if ctx.PeriodStart == nil || ctx.PeriodStart.String() != "2024-01-01" {
		t.Errorf("PeriodStart = %v; want 2024-01-01", ctx.PeriodStart)
	}
	if ctx.PeriodEnd.String() != "2024-12-31" {
		t.Errorf("PeriodEnd = %s; want 2024-12-31", ctx.PeriodEnd)
	}
}

func TestContextStartAfterEndKept(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="BAD">
    <xbrli:entity>
      <xbrli:identifier scheme="s">E</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:startDate>2024-12-31</xbrli:startDate>
      <xbrli:endDate>2024-01-01</xbrli:endDate>
    </xbrli:period>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	ctx, ok := Context(d, firstContext(t, d), c)
	if !ok {
		t.Fatal("inverted-period context should still resolve")
	}
	if ctx.ID != "BAD" {
		t.Errorf("ID = %q", ctx.ID)
	}
	msgs := c.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "BAD") {
		t.Errorf("Messages = %v; want one error naming the context", msgs)
	}
}

func TestContextMissingPeriodExcluded(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="NOPERIOD">
    <xbrli:entity>
      <xbrli:identifier scheme="s">E</xbrli:identifier>
    </xbrli:entity>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	if _, ok := Context(d, firstContext(t, d), c); ok {
		t.Error("context without a period should be excluded")
	}
	if c.Len() == 0 {
		t.Error("exclusion should record a structural error")
	}
}

func TestContextUnparseableDateExcluded(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="BADDATE">
    <xbrli:entity>
      <xbrli:identifier scheme="s">E</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period><xbrli:instant>yesterday</xbrli:instant></xbrli:period>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	if _, ok := Context(d, firstContext(t, d), c); ok {
		t.Error("context with an unparseable date should be excluded")
	}
}

func TestContextDimensions(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="SEG">
    <xbrli:entity>
      <xbrli:identifier scheme="s">E</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember dimension="us-gaap:StatementBusinessSegmentsAxis">us-gaap:RetailMember</xbrldi:explicitMember>
        <xbrldi:typedMember dimension="us-gaap:CustomerAxis">CUST-001</xbrldi:typedMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period><xbrli:instant>2024-12-31</xbrli:instant></xbrli:period>
    <xbrli:scenario>
      <xbrldi:explicitMember dimension="us-gaap:ScenarioAxis">us-gaap:ForecastMember</xbrldi:explicitMember>
    </xbrli:scenario>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	ctx, ok := Context(d, firstContext(t, d), c)
	if !ok {
		t.Fatal("context should resolve")
	}
	if c.Len() != 0 {
		t.Errorf("collected %d issues; want 0: %v", c.Len(), c.Messages())
	}

	if len(ctx.SegmentDimensions) != 2 {
		t.Fatalf("len(SegmentDimensions) = %d; want 2", len(ctx.SegmentDimensions))
	}
	first := ctx.SegmentDimensions[0]
	if first.Name != "us-gaap:StatementBusinessSegmentsAxis" ||
		first.Member != "us-gaap:RetailMember" ||
		first.Kind != model.MemberExplicit {
		t.Errorf("segment[0] = %+v", first)
	}
	second := ctx.SegmentDimensions[1]
	if second.Kind != model.MemberTyped || second.Member != "CUST-001" {
		t.Errorf("segment[1] = %+v", second)
	}

	if len(ctx.ScenarioDimensions) != 1 {
		t.Fatalf("len(ScenarioDimensions) = %d; want 1", len(ctx.ScenarioDimensions))
	}
}

func TestContextMalformedDimension(t *testing.T) {
	d := parseFiling(t, `
  <xbrli:context id="SEG">
    <xbrli:entity>
      <xbrli:identifier scheme="s">E</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember>us-gaap:RetailMember</xbrldi:explicitMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period><xbrli:instant>2024-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>`)

	c := xbrl.NewCollector(0)
	ctx, ok := Context(d, firstContext(t, d), c)
	if !ok {
		t.Fatal("context should resolve despite the malformed member")
	}
	if len(ctx.SegmentDimensions) != 0 {
		t.Errorf("SegmentDimensions = %v; want empty", ctx.SegmentDimensions)
	}
	if c.Len() != 1 {
		t.Errorf("collected %d issues; want 1", c.Len())
	}
}
