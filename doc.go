// Package xbrl provides structural parsing and referential validation of
// XBRL instance documents.
//
// An XBRL instance is relational-by-reference within a single XML tree:
// facts point to contexts and units by identifier, contexts carry nested
// dimensional qualifiers, and units may be simple, composite
// (numerator/denominator), or unresolvable. This package reconciles all of
// that against the document's own declarations, without an external
// schema-validating processor.
//
// # Quick Start
//
//	import (
//	    "github.com/dayofkishore/ind-fin-xbrl/engine"
//	)
//
//	parser := engine.New()
//	instance, err := parser.Parse(ctx, "filings/company_10k.xml")
//	if err != nil {
//	    log.Fatal(err) // fatal: unreadable source, malformed XML, no root
//	}
//	for _, msg := range instance.ValidationErrors {
//	    fmt.Println(msg) // collected, never raised
//	}
//
// # Error Model
//
// Two severities are kept strictly apart:
//
//   - Fatal parse errors (unreadable source, malformed XML, absent root
//     element) abort the parse call and are returned as a *ParseError.
//   - Validation errors (unresolved references, duplicate identifiers,
//     invariant violations, unrecognized unit shapes) are collected on the
//     returned Instance. The parse still completes; real-world filings are
//     frequently imperfect and must remain inspectable.
//
// # Functional Options
//
//	parser := engine.New(
//	    xbrl.WithWorkerCount(8),
//	    xbrl.WithMaxValidationErrors(100),
//	    xbrl.WithLogger(logger),
//	)
//
// Batch processing of many documents is embarrassingly parallel across
// documents; see the worker package.
package xbrl
