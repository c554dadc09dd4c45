package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
)

// Document is a structurally parsed XBRL instance: the DOM, the instance
// root element, and the document's own namespace declarations. It is
// read-only after construction.
type Document struct {
	// Source is the file path or stream name the document came from.
	Source string

	doc  *xmlquery.Node
	root *xmlquery.Node

	// prefix -> namespace URI, "" key for the default namespace
	namespaces map[string]string
	// namespace URI -> first declared prefix
	uriToPrefix map[string]string
}

// Load reads and structurally parses an instance document from disk.
// Unreadable sources, malformed XML, and absent root elements are fatal.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xbrl.NewParseError(path, err)
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse structurally parses an instance document from a reader. source
// names the document in errors.
func Parse(source string, r io.Reader) (*Document, error) {
	// Entity expansion is disabled: instance documents never need it and
	// it closes off XXE-style expansion on untrusted filings.
	doc, err := xmlquery.ParseWithOptions(r, xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict: true,
			Entity: map[string]string{},
		},
	})
	if err != nil {
		return nil, xbrl.NewParseError(source, fmt.Errorf("%w: %v", xbrl.ErrNotWellFormed, err))
	}

	root := firstElement(doc)
	if root == nil {
		return nil, xbrl.NewParseError(source, xbrl.ErrNoRootElement)
	}

	d := &Document{
		Source:      source,
		doc:         doc,
		root:        root,
		namespaces:  map[string]string{},
		uriToPrefix: map[string]string{},
	}
	d.collectNamespaces()
	return d, nil
}

// Root returns the instance root element.
func (d *Document) Root() *xmlquery.Node {
	return d.root
}

// Namespaces returns the document's prefix to namespace-URI declarations.
// The default namespace, if any, is under the empty prefix.
func (d *Document) Namespaces() map[string]string {
	return d.namespaces
}

// Contexts returns the declared context elements in document order.
func (d *Document) Contexts() []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.doc, exprContexts)
}

// Units returns the declared unit elements in document order.
func (d *Document) Units() []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.doc, exprUnits)
}

// SchemaRefs returns the xlink:href values of the document's schemaRef
// declarations. The referenced taxonomies are never loaded.
func (d *Document) SchemaRefs() []string {
	var refs []string
	for _, n := range xmlquery.QuerySelectorAll(d.doc, exprSchemaRefs) {
		if href := AttrNS(n, "href", NSXLink); href != "" {
			refs = append(refs, href)
		}
	}
	return refs
}

// FootnoteLinks returns the footnoteLink elements in document order.
func (d *Document) FootnoteLinks() []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.doc, exprFootnoteLinks)
}

// QName returns the namespace-prefixed qualified name of an element,
// resolved syntactically against the document's own declarations. An
// element in the default namespace gets the first prefix the document
// declares for that URI, falling back to the conventional prefix for the
// standard XBRL namespaces.
func (d *Document) QName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	if n.NamespaceURI != "" {
		if prefix, ok := d.uriToPrefix[n.NamespaceURI]; ok && prefix != "" {
			return prefix + ":" + n.Data
		}
		if prefix := PrefixForURI(n.NamespaceURI); prefix != "" {
			return prefix + ":" + n.Data
		}
	}
	return n.Data
}

// collectNamespaces walks the root element's xmlns declarations.
func (d *Document) collectNamespaces() {
	for _, attr := range d.root.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			d.namespaces[attr.Name.Local] = attr.Value
			if _, ok := d.uriToPrefix[attr.Value]; !ok {
				d.uriToPrefix[attr.Value] = attr.Name.Local
			}
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			d.namespaces[""] = attr.Value
		}
	}
}

// firstElement returns the first element child of a node.
func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}

// ChildElements returns the element children of a node in document order.
func ChildElements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			out = append(out, child)
		}
	}
	return out
}

// FindChild returns the first element child with the given local name,
// or nil.
func FindChild(n *xmlquery.Node, local string) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode && child.Data == local {
			return child
		}
	}
	return nil
}

// Attr returns an attribute value by its written name ("contextRef",
// "xsi:nil"), or "" when absent.
func Attr(n *xmlquery.Node, name string) string {
	prefix, local, hasPrefix := strings.Cut(name, ":")
	for _, attr := range n.Attr {
		if hasPrefix {
			if attr.Name.Space == prefix && attr.Name.Local == local {
				return attr.Value
			}
			continue
		}
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// AttrNS returns an attribute value by local name and namespace URI,
// falling back to a prefix match against the conventional prefix when the
// parser did not resolve the attribute's namespace.
func AttrNS(n *xmlquery.Node, local, nsURI string) string {
	conventional := PrefixForURI(nsURI)
	for _, attr := range n.Attr {
		if attr.Name.Local != local {
			continue
		}
		if attr.NamespaceURI == nsURI || attr.Name.Space == conventional {
			return attr.Value
		}
	}
	return ""
}

// Text returns the full text content of a node with surrounding
// whitespace intact.
func Text(n *xmlquery.Node) string {
	return n.InnerText()
}
