package resolve

import (
	"strings"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// Context resolves one context declaration. Structurally missing period
// information excludes the context (returning false); facts referencing
// the excluded identifier then surface as unresolved-reference errors
// downstream, never as a silent default. A duration whose start falls
// after its end is recorded as an error but the context is still produced
// with the raw dates, so the filing stays inspectable.
func Context(d *loader.Document, n *xmlquery.Node, c *xbrl.Collector) (model.Context, bool) {
	id := loader.Attr(n, "id")
	if id == "" {
		c.Errorf(xbrl.CodeStructure, "context", "context declaration is missing its id attribute")
		return model.Context{}, false
	}

	ctx := model.Context{ID: id}

	entity := loader.FindChild(n, "entity")
	if entity != nil {
		if ident := loader.FindChild(entity, "identifier"); ident != nil {
			ctx.Entity = strings.TrimSpace(loader.Text(ident))
			ctx.EntityScheme = loader.Attr(ident, "scheme")
		}
	}
	if ctx.Entity == "" {
		c.Errorf(xbrl.CodeStructure, id, "context %q has no entity identifier", id)
	}

	if !resolvePeriod(n, &ctx, c) {
		return model.Context{}, false
	}

	if entity != nil {
		if segment := loader.FindChild(entity, "segment"); segment != nil {
			ctx.SegmentDimensions = dimensions(segment, id, c)
		}
	}
	if scenario := loader.FindChild(n, "scenario"); scenario != nil {
		ctx.ScenarioDimensions = dimensions(scenario, id, c)
	}

	return ctx, true
}

// resolvePeriod determines the period kind and dates. A single instant
// date makes an instant context; start+end dates make a duration. Any
// other shape (missing period, missing dates, unparseable dates, forever
// periods) is a structural error and excludes the context.
func resolvePeriod(n *xmlquery.Node, ctx *model.Context, c *xbrl.Collector) bool {
	period := loader.FindChild(n, "period")
	if period == nil {
		c.Errorf(xbrl.CodeStructure, ctx.ID, "context %q has no period element", ctx.ID)
		return false
	}

	if instant := loader.FindChild(period, "instant"); instant != nil {
		date, err := model.ParseDate(strings.TrimSpace(loader.Text(instant)))
		if err != nil {
			c.Errorf(xbrl.CodeStructure, ctx.ID, "context %q has an unparseable instant date: %v", ctx.ID, err)
			return false
		}
		ctx.Period = model.PeriodInstant
		ctx.PeriodEnd = date
		return true
	}

	startNode := loader.FindChild(period, "startDate")
	endNode := loader.FindChild(period, "endDate")
	if startNode == nil || endNode == nil {
		c.Errorf(xbrl.CodeStructure, ctx.ID, "context %q has a period with neither an instant nor a start/end date pair", ctx.ID)
		return false
	}

	start, err := model.ParseDate(strings.TrimSpace(loader.Text(startNode)))
	if err != nil {
		c.Errorf(xbrl.CodeStructure, ctx.ID, "context %q has an unparseable start date: %v", ctx.ID, err)
		return false
	}
	end, err := model.ParseDate(strings.TrimSpace(loader.Text(endNode)))
	if err != nil {
		c.Errorf(xbrl.CodeStructure, ctx.ID, "context %q has an unparseable end date: %v", ctx.ID, err)
		return false
	}

	if start.After(end) {
		c.Errorf(xbrl.CodePeriodOrder, ctx.ID,
			"context %q has period start %s after end %s", ctx.ID, start, end)
	}

	ctx.Period = model.PeriodDuration
	ctx.PeriodStart = &start
	ctx.PeriodEnd = end
	return true
}

// dimensions walks one segment or scenario block, preserving insertion
// order; presentation order can carry semantic grouping in some filings.
func dimensions(block *xmlquery.Node, contextID string, c *xbrl.Collector) []model.Dimension {
	var dims []model.Dimension
	for _, child := range loader.ChildElements(block) {
		switch child.Data {
		case "explicitMember":
			name := loader.Attr(child, "dimension")
			member := strings.TrimSpace(loader.Text(child))
			if name == "" || member == "" {
				c.Errorf(xbrl.CodeDimension, contextID,
					"context %q has an explicit member missing its dimension name or member value", contextID)
				continue
			}
			dims = append(dims, model.Dimension{
				Name:   name,
				Member: member,
				Kind:   model.MemberExplicit,
			})
		case "typedMember":
			name := loader.Attr(child, "dimension")
			if name == "" {
				c.Errorf(xbrl.CodeDimension, contextID,
					"context %q has a typed member missing its dimension name", contextID)
				continue
			}
			dims = append(dims, model.Dimension{
				Name:   name,
				Member: strings.TrimSpace(loader.Text(child)),
				Kind:   model.MemberTyped,
			})
		default:
			// Non-dimensional segment content is legal; nothing to record.
		}
	}
	return dims
}
