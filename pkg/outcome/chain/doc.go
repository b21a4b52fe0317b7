// Package chain provides a fluent wrapper over the solo combinators for
// pipelines whose error side is the base Entity interface.
//
// It composes Select, Then, Ensure, Recover, IfSome/IfNone and the terminal
// Match/OrElse behind a convenient Chain[T] type, so a pipeline reads top
// to bottom without branching at each step. Type-changing steps (Then,
// Select, ThenTry, Match) are free functions because Go methods cannot add
// type parameters.
//
// Key operations:
//   - Start/FromValue/FromError: begin a chain
//   - Then/Select/ThenTry: move to a new value type
//   - Ensure: guard the success arm
//   - Recover: re-admit a success from the error arm
//   - IfSome/IfNone: side effects mid-chain
//   - Match/OrElse/OrElseBy/ThenDo/ElseDo: leave the algebra
//   - Errors: the flat cause-list view of the chain's error
package chain
