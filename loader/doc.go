// Package loader performs the structural parse of an XBRL instance
// document: well-formedness, root element presence, namespace
// declarations, and selection of the declaration blocks (contexts, units,
// schemaRefs, footnote links) the resolvers consume.
//
// Failures at this layer are fatal: an unreadable source, malformed XML,
// or an absent root element aborts the parse. Everything above this layer
// collects validation errors instead of failing.
package loader
