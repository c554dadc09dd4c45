package engine

import (
	"time"

	xbrl "github.com/dayofkishore/ind-fin-xbrl"
	"github.com/dayofkishore/ind-fin-xbrl/loader"
	"github.com/dayofkishore/ind-fin-xbrl/model"
)

// session holds the transient state of one parse: the document under
// assembly, the issue collector, and the start time for metrics. It is
// created per call and released exactly once.
type session struct {
	parser    *Parser
	doc       *loader.Document
	collector *xbrl.Collector
	started   time.Time
	released  bool
}

func (p *Parser) newSession(doc *loader.Document) *session {
	return &session{
		parser:    p,
		doc:       doc,
		collector: xbrl.NewCollector(p.opts.MaxValidationErrors),
		started:   time.Now(),
	}
}

// finish records metrics and logs the completed parse. Called once per
// successful assembly, before release.
func (s *session) finish(in *model.Instance) {
	elapsed := time.Since(s.started)

	if s.parser.metrics != nil {
		s.parser.metrics.RecordParse(elapsed,
			len(in.Facts), len(in.Contexts), len(in.Units), len(in.ValidationErrors))
	}

	s.parser.log.Debug().
		Str("source", s.doc.Source).
		Int("contexts", len(in.Contexts)).
		Int("units", len(in.Units)).
		Int("facts", len(in.Facts)).
		Int("validation_errors", len(in.ValidationErrors)).
		Dur("elapsed", elapsed).
		Msg("parsed instance")
}

// release drops the session's references. Idempotent; deferred on every
// exit path of assemble.
func (s *session) release() {
	if s.released {
		return
	}
	s.released = true
	s.doc = nil
	s.collector = nil
}
