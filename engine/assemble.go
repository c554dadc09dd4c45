package engine

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/extract"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
	"github.com/dayofkishore/ind-fin-xbrl/resolve"
)

// assemble runs the full pipeline over a parsed document: contexts and
// units first, then facts against the resolved identifier sets, then the
// instance-level fields. Document order is preserved throughout.
func (p *Parser) assemble(doc *loader.Document) *model.Instance {
	s := p.newSession(doc)
	defer s.release()

	c := s.collector
	in := model.NewInstance(doc.Source)
	in.Namespaces = doc.Namespaces()
	in.SchemaRef = strings.Join(doc.SchemaRefs(), " ")

	contexts, contextIDs := resolveContexts(doc, c)
	units, unitIDs := resolveUnits(doc, c)

	refs := extract.Refs{Contexts: contextIDs, Units: unitIDs}
	if p.opts.ResolveFootnotes {
		refs.Footnotes = extract.Footnotes(doc)
	}

	in.Contexts = contexts
	in.Units = units
	in.Facts = extract.Facts(doc, refs, c)
	in.Entity = rootEntity(contexts, c)
	in.FiscalPeriodFocus = fiscalPeriodFocus(contexts)
	in.ValidationErrors = c.Messages()

	s.finish(in)
	return in
}

// resolveContexts resolves every declared context in document order. The
// first declaration of an identifier wins; later duplicates are dropped
// with a duplicate-identifier error.
func resolveContexts(doc *loader.Document, c *xbrl.Collector) ([]model.Context, map[string]struct{}) {
	var contexts []model.Context
	seen := make(map[string]struct{})

	for _, n := range doc.Contexts() {
		ctx, ok := resolve.Context(doc, n, c)
		if !ok {
			continue
		}
		if _, dup := seen[ctx.ID]; dup {
			c.Errorf(xbrl.CodeDuplicateID, ctx.ID,
				"duplicate context identifier %q; keeping the first declaration", ctx.ID)
			continue
		}
		seen[ctx.ID] = struct{}{}
		contexts = append(contexts, ctx)
	}
	return contexts, seen
}

// resolveUnits resolves every declared unit in document order with the
// same first-wins duplicate handling as contexts.
func resolveUnits(doc *loader.Document, c *xbrl.Collector) ([]model.Unit, map[string]struct{}) {
	var units []model.Unit
	seen := make(map[string]struct{})

	for _, n := range doc.Units() {
		u := resolve.Unit(doc, n, c)
		if u.ID == "" {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			c.Errorf(xbrl.CodeDuplicateID, u.ID,
				"duplicate unit identifier %q; keeping the first declaration", u.ID)
			continue
		}
		seen[u.ID] = struct{}{}
		units = append(units, u)
	}
	return units, seen
}

// rootEntity takes the filing's entity identifier from the first resolved
// context. When nothing resolves the entity is recorded as UNKNOWN and a
// validation error notes it.
func rootEntity(contexts []model.Context, c *xbrl.Collector) string {
	for _, ctx := range contexts {
		if ctx.Entity != "" {
			return ctx.Entity
		}
	}
	c.Errorf(xbrl.CodeStructure, "instance", "no entity identifier could be resolved from any context")
	return "UNKNOWN"
}

// fiscalPeriodFocus picks the context carrying the filing's fiscal focus:
// an instant context whose identifier is tagged INSTANT, else the first
// instant context. Empty when the filing has no instant context.
func fiscalPeriodFocus(contexts []model.Context) string {
	var firstInstant string
	for _, ctx := range contexts {
		if !ctx.IsInstant() {
			continue
		}
		if strings.Contains(strings.ToUpper(ctx.ID), "INSTANT") {
			return ctx.ID
		}
		if firstInstant == "" {
			firstInstant = ctx.ID
		}
	}
	return firstInstant
}

// factLocation names a fact candidate in validation messages by its
// document-order position and qualified name.
func factLocation(doc *loader.Document, n *xmlquery.Node, index int) string {
	return fmt.Sprintf("fact #%d (%s)", index, doc.QName(n))
}
