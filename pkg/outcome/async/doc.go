// Package async mirrors the solo combinator set over pending outcomes, so
// chaining through an asynchronous step never needs a different pipeline
// shape. A Pending[V, E] is a single-delivery channel carrying one
// Outcome[V, E]; Start lifts a resolved outcome, Go runs a producer, Await
// collapses back to a value.
//
// Every combinator has two forms: the plain one takes a synchronous
// continuation, the Async-suffixed one takes a continuation whose own
// result is pending. Only the terminal Match/OrElse pair differs in return
// shape, delivering the final plain value on a channel.
//
// Chains are strictly sequential: each combinator awaits its single input
// before applying the continuation and delivers exactly one result. Result
// channels are buffered, so abandoning a chain leaks no goroutines.
// Cancellation of the surrounding context resolves an Await to an
// Unexpected error; no cancellation is threaded through the algebra itself.
package async
