package extract

import "testing"

func TestFootnotes(t *testing.T) {
	d := parseFiling(t, `
  <link:footnoteLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="#fact-1" xlink:label="loc-1"/>
    <link:loc xlink:type="locator" xlink:href="#fact-2" xlink:label="loc-2"/>
    <link:footnote xlink:type="resource" xlink:label="note-a" id="fn-1" xml:lang="en">Restated.</link:footnote>
    <link:footnoteArc xlink:type="arc" xlink:from="loc-1" xlink:to="note-a"/>
    <link:footnoteArc xlink:type="arc" xlink:from="loc-2" xlink:to="note-a"/>
  </link:footnoteLink>`)

	notes := Footnotes(d)
	if len(notes) != 2 {
		t.Fatalf("len(notes) = %d; want 2", len(notes))
	}
	if got := notes["fact-1"]; len(got) != 1 || got[0] != "fn-1" {
		t.Errorf("notes[fact-1] = %v; want [fn-1]", got)
	}
	if got := notes["fact-2"]; len(got) != 1 || got[0] != "fn-1" {
		t.Errorf("notes[fact-2] = %v; want [fn-1]", got)
	}
}

func TestFootnotesLabelFallback(t *testing.T) {
	// Footnote without an id attribute falls back to its xlink label
	d := parseFiling(t, `
  <link:footnoteLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="#fact-1" xlink:label="loc-1"/>
    <link:footnote xlink:type="resource" xlink:label="note-a">Detail.</link:footnote>
    <link:footnoteArc xlink:type="arc" xlink:from="loc-1" xlink:to="note-a"/>
  </link:footnoteLink>`)

	notes := Footnotes(d)
	if got := notes["fact-1"]; len(got) != 1 || got[0] != "note-a" {
		t.Errorf("notes[fact-1] = %v; want [note-a]", got)
	}
}

func TestFootnotesDanglingArc(t *testing.T) {
	d := parseFiling(t, `
  <link:footnoteLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="#fact-1" xlink:label="loc-1"/>
    <link:footnoteArc xlink:type="arc" xlink:from="loc-1" xlink:to="nowhere"/>
  </link:footnoteLink>`)

	if notes := Footnotes(d); notes != nil {
		t.Errorf("notes = %v; want nil when no arc resolves", notes)
	}
}

func TestFootnotesNone(t *testing.T) {
	d := parseFiling(t, `
  <us-gaap:Revenues contextRef="I1">5</us-gaap:Revenues>`)

	if notes := Footnotes(d); notes != nil {
		t.Errorf("notes = %v; want nil", notes)
	}
}
