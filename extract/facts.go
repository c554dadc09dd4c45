package extract

import (
	"fmt"
	"iter"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// Refs holds the identifier sets built by context and unit resolution,
// consulted when facts resolve their references.
type Refs struct {
	Contexts map[string]struct{}
	Units    map[string]struct{}

	// Footnotes maps fact element ids to footnote identifiers; nil when
	// footnote resolution is disabled.
	Footnotes map[string][]string
}

// Facts extracts every fact under the instance root in document order.
// An unresolved context or unit reference never fails the extraction: the
// fact is emitted with the reference preserved as written, and a
// validation error names the unresolved identifier and the fact's
// document-order position.
func Facts(d *loader.Document, refs Refs, c *xbrl.Collector) []model.Fact {
	var facts []model.Fact
	index := 0
	for n := range Candidates(d.Root()) {
		index++
		facts = append(facts, fact(d, n, index, refs, c))
	}
	return facts
}

// Candidates yields fact-candidate elements under root, exactly once
// each, in document order. Context, unit, and linkbase (schemaRef,
// footnoteLink) declarations are skipped; elements without a contextRef
// of their own but with element children are tuple containers and are
// descended into.
func Candidates(root *xmlquery.Node) iter.Seq[*xmlquery.Node] {
	return func(yield func(*xmlquery.Node) bool) {
		walk(root, yield)
	}
}

func walk(n *xmlquery.Node, yield func(*xmlquery.Node) bool) bool {
	for _, child := range loader.ChildElements(n) {
		if isDeclaration(child) {
			continue
		}
		if loader.Attr(child, "contextRef") != "" {
			if !yield(child) {
				return false
			}
			continue
		}
		if hasElementChildren(child) {
			if !walk(child, yield) {
				return false
			}
		}
	}
	return true
}

// isDeclaration reports whether an element is a context/unit declaration
// or linkbase machinery rather than a fact candidate.
func isDeclaration(n *xmlquery.Node) bool {
	if n.NamespaceURI == loader.NSInstance || n.Prefix == "xbrli" {
		return n.Data == "context" || n.Data == "unit"
	}
	return n.NamespaceURI == loader.NSLinkbase || n.Prefix == "link"
}

func hasElementChildren(n *xmlquery.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// fact builds one Fact from an element, resolving its references and
// recording any invariant violations. index is the 1-based document-order
// position used in error messages.
func fact(d *loader.Document, n *xmlquery.Node, index int, refs Refs, c *xbrl.Collector) model.Fact {
	f := model.Fact{
		Concept:    d.QName(n),
		Value:      loader.Text(n),
		ContextRef: loader.Attr(n, "contextRef"),
		UnitRef:    loader.Attr(n, "unitRef"),
		Nil:        isNil(n),
		Attributes: attributes(n),
	}
	location := fmt.Sprintf("fact #%d (%s)", index, f.Concept)

	if raw := loader.Attr(n, "decimals"); raw != "" {
		f.Decimals = parsePrecision(raw, location, c)
	} else if raw := loader.Attr(n, "precision"); raw != "" {
		f.Decimals = parsePrecision(raw, location, c)
	}

	// An explicitly nil fact carries no value even when the element has
	// whitespace content.
	if f.Nil {
		f.Value = ""
	}

	if _, ok := refs.Contexts[f.ContextRef]; !ok {
		c.Errorf(xbrl.CodeUnresolvedRef, location,
			"context reference %q does not resolve to a declared context", f.ContextRef)
	}
	if f.UnitRef != "" {
		if _, ok := refs.Units[f.UnitRef]; !ok {
			c.Errorf(xbrl.CodeUnresolvedRef, location,
				"unit reference %q does not resolve to a declared unit", f.UnitRef)
		}
	}

	if id := loader.Attr(n, "id"); id != "" && refs.Footnotes != nil {
		f.FootnoteIDs = refs.Footnotes[id]
	}

	if err := f.Validate(); err != nil {
		c.Errorf(xbrl.CodeValue, location, "%v", err)
	}

	return f
}

func parsePrecision(raw, location string, c *xbrl.Collector) *model.Precision {
	p, err := model.ParsePrecision(raw)
	if err != nil {
		c.Errorf(xbrl.CodeValue, location, "%v", err)
		return nil
	}
	return p
}

// isNil checks the explicit xsi:nil marker.
func isNil(n *xmlquery.Node) bool {
	v := loader.AttrNS(n, "nil", loader.NSXSI)
	return v == "true" || v == "1"
}

// attributes preserves the element's attributes in document order, as
// written, for lossless round-tripping.
func attributes(n *xmlquery.Node) []model.Attr {
	if len(n.Attr) == 0 {
		return nil
	}
	out := make([]model.Attr, 0, len(n.Attr))
	for _, attr := range n.Attr {
		name := attr.Name.Local
		if attr.Name.Space != "" {
			name = attr.Name.Space + ":" + attr.Name.Local
		}
		out = append(out, model.Attr{Name: name, Value: attr.Value})
	}
	return out
}
