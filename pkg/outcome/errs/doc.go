// Package errs defines the structured error model of the outcome algebra.
//
// Every error carries a failure kind, a machine-readable code, a message, a
// creation timestamp and an optional cause link to the error it was derived
// from. Causes are assigned once, at construction, so chains are finite and
// acyclic. Two errors compare equal when they share kind and code; message,
// timestamp and cause are deliberately excluded so errors.Is can match an
// error against a categorical prototype.
//
// Highlights:
//   - Entity: the common contract (kind/code/message/timestamp/cause)
//   - Validation, NotFound, Conflict, Authorization, Failure, Unexpected:
//     the concrete specializations
//   - Lift: convert any entity to a target entity type, nesting the source
//     as cause when it cannot be reused directly
//   - FullString: columnar rendering of an error and its whole cause chain
//   - Flatten: list view of a cause chain
package errs
