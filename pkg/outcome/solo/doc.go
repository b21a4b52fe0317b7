// Package solo contains the synchronous combinator algebra over
// Outcome[V, E]. These free generic functions form the building blocks for
// error-aware pipelines without branching at each step.
//
// Highlights:
//   - Select/Then: transform or bind over the success arm
//   - Ensure/EnsureWith: guard the success arm with a predicate
//   - Recover: bind over the error arm to re-admit a success
//   - OrElse/OrElseBy/OrElseErr: fall back out of the error arm
//   - Match: total elimination, both handlers required
//   - IfSome/IfNone: side effects that keep the chain going
//   - ThenDo/ElseDo: terminal side effects
//   - Try: adapt a (value, error) function into the algebra
//
// Ordering: once an outcome is an error, every Select/Then/Ensure/ThenDo
// downstream is skipped until a Recover or OrElse re-admits a success.
// Continuations never see the wrong arm.
package solo
