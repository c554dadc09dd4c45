// Package model defines the immutable value types produced by an XBRL
// instance parse: Dimension, Context, Unit, Fact, and the aggregate
// Instance container.
//
// All types are plain values. They are created once during resolution and
// never mutated afterwards; facts reference contexts and units by
// identifier, never by pointer. JSON field names are the documented
// serialization contract of the ingestion stage.
package model
