package loader

import "github.com/antchfx/xpath"

// Compiled selection expressions for the declaration blocks of an
// instance document. Compiled once at process start and shared read-only
// across concurrent parses; never mutated afterwards.
//
// Selection is by local name: SEC and ESEF filings bind the standard
// namespaces to varying prefixes, and the instance's own declarations are
// the only authority this core consults.
var (
	exprContexts      = xpath.MustCompile("/*/*[local-name()='context']")
	exprUnits         = xpath.MustCompile("/*/*[local-name()='unit']")
	exprSchemaRefs    = xpath.MustCompile("/*/*[local-name()='schemaRef']")
	exprFootnoteLinks = xpath.MustCompile("/*/*[local-name()='footnoteLink']")
)

// Well-known XBRL namespace URIs. Built once; shared read-only.
const (
	NSInstance  = "http://www.xbrl.org/2003/instance"
	NSLinkbase  = "http://www.xbrl.org/2003/linkbase"
	NSXLink     = "http://www.w3.org/1999/xlink"
	NSISO4217   = "http://www.xbrl.org/2003/iso4217"
	NSDimension = "http://xbrl.org/2006/xbrldi"
	NSXSI       = "http://www.w3.org/2001/XMLSchema-instance"
)

// wellKnownPrefixes maps standard namespace URIs to their conventional
// prefixes, used when an element carries no prefix of its own and the
// document declares the namespace as its default.
var wellKnownPrefixes = map[string]string{
	NSInstance:  "xbrli",
	NSLinkbase:  "link",
	NSXLink:     "xlink",
	NSISO4217:   "iso4217",
	NSDimension: "xbrldi",
	NSXSI:       "xsi",
}

// PrefixForURI returns the conventional prefix for a well-known XBRL
// namespace URI, or "" when the URI is not one of the standard set.
func PrefixForURI(uri string) string {
	return wellKnownPrefixes[uri]
}
