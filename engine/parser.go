package engine

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/cache"
	"github.com/dayofkishore/ind-fin-xbrl/extract"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// Parser parses XBRL instance documents into model.Instance values. A
// Parser is safe for concurrent use; each call runs its own session.
type Parser struct {
	opts    xbrl.Options
	metrics *xbrl.Metrics
	docs    *cache.Cache[string, *loader.Document]
	log     zerolog.Logger
}

// New creates a Parser with the given options.
func New(opts ...xbrl.Option) *Parser {
	o := xbrl.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	p := &Parser{
		opts: *o,
		log:  o.Logger,
	}
	if o.CollectMetrics {
		p.metrics = xbrl.NewMetrics()
	}
	if o.DocumentCacheSize > 0 {
		p.docs = cache.New[string, *loader.Document](o.DocumentCacheSize)
	}
	return p
}

// Options returns a copy of the parser's configuration.
func (p *Parser) Options() xbrl.Options {
	return p.opts
}

// Metrics returns the parser's metrics, or nil when collection is
// disabled.
func (p *Parser) Metrics() *xbrl.Metrics {
	return p.metrics
}

// Parse reads, parses, and assembles one instance document from disk.
// The returned error is fatal only (unreadable source, malformed XML, no
// root element); data-quality problems are collected on the instance.
func (p *Parser) Parse(ctx context.Context, path string) (*model.Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, xbrl.NewParseError(path, err)
	}

	doc, err := p.document(path)
	if err != nil {
		p.log.Error().Str("source", path).Err(err).Msg("parse failed")
		return nil, err
	}
	return p.assemble(doc), nil
}

// ParseReader parses and assembles one instance document from a reader.
// source names the document in errors and on the instance. Streamed
// documents bypass the document cache.
func (p *Parser) ParseReader(ctx context.Context, source string, r io.Reader) (*model.Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, xbrl.NewParseError(source, err)
	}

	doc, err := loader.Parse(source, r)
	if err != nil {
		p.log.Error().Str("source", source).Err(err).Msg("parse failed")
		return nil, err
	}
	return p.assemble(doc), nil
}

// Validate runs a structural pass over one document without constructing
// facts: context and unit resolution plus a referential scan. It reports
// whether the document is clean, with the collected problem messages.
// Fatal errors surface as a single message with a false result.
func (p *Parser) Validate(ctx context.Context, path string) (bool, []string) {
	if err := ctx.Err(); err != nil {
		return false, []string{err.Error()}
	}

	doc, err := p.document(path)
	if err != nil {
		return false, []string{err.Error()}
	}

	c := xbrl.NewCollector(p.opts.MaxValidationErrors)
	_, contextIDs := resolveContexts(doc, c)
	_, unitIDs := resolveUnits(doc, c)

	index := 0
	for n := range extract.Candidates(doc.Root()) {
		index++
		location := factLocation(doc, n, index)
		if ref := loader.Attr(n, "contextRef"); ref != "" {
			if _, ok := contextIDs[ref]; !ok {
				c.Errorf(xbrl.CodeUnresolvedRef, location,
					"context reference %q does not resolve to a declared context", ref)
			}
		}
		if ref := loader.Attr(n, "unitRef"); ref != "" {
			if _, ok := unitIDs[ref]; !ok {
				c.Errorf(xbrl.CodeUnresolvedRef, location,
					"unit reference %q does not resolve to a declared unit", ref)
			}
		}
	}

	messages := c.Messages()
	return len(messages) == 0, messages
}

// document loads a parsed document, through the cache when one is
// configured.
func (p *Parser) document(path string) (*loader.Document, error) {
	if p.docs != nil {
		if doc, ok := p.docs.Get(path); ok {
			return doc, nil
		}
	}

	doc, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if p.docs != nil {
		p.docs.Set(path, doc)
	}
	return doc, nil
}
