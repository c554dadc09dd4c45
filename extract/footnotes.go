package extract

import (
	"strings"

	"github.com/dayofkishore/ind-fin-xbrl/loader"
)

// Footnotes resolves the document's footnoteLink blocks into a map from
// fact element id to the ordered footnote identifiers attached to it.
// Each link's loc elements bind labels to fact ids via fragment hrefs,
// footnote elements declare the notes, and footnoteArc elements connect
// the two.
func Footnotes(d *loader.Document) map[string][]string {
	result := make(map[string][]string)

	for _, link := range d.FootnoteLinks() {
		labelToFacts := make(map[string][]string)
		noteByLabel := make(map[string]string)
		type arc struct{ from, to string }
		var arcs []arc

		for _, child := range loader.ChildElements(link) {
			label := loader.AttrNS(child, "label", loader.NSXLink)
			switch child.Data {
			case "loc":
				href := loader.AttrNS(child, "href", loader.NSXLink)
				factID := strings.TrimPrefix(href, "#")
				if label != "" && factID != "" {
					labelToFacts[label] = append(labelToFacts[label], factID)
				}
			case "footnote":
				id := loader.Attr(child, "id")
				if id == "" {
					id = label
				}
				if label != "" {
					noteByLabel[label] = id
				}
			case "footnoteArc":
				arcs = append(arcs, arc{
					from: loader.AttrNS(child, "from", loader.NSXLink),
					to:   loader.AttrNS(child, "to", loader.NSXLink),
				})
			}
		}

		for _, a := range arcs {
			note, ok := noteByLabel[a.to]
			if !ok {
				continue
			}
			for _, factID := range labelToFacts[a.from] {
				result[factID] = append(result[factID], note)
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
