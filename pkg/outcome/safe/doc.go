// Package safe wraps common fallible platform operations (file reads, JSON
// codecs, HTTP fetches, string parsing, slice indexing) so each returns an
// outcome with its fault repackaged as one structured error, contextual
// fields included. These helpers only use the entity constructors and the
// outcome constructors; they never touch the combinator algebra.
package safe
