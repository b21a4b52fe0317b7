// Package outcome provides the two-variant success/error container at the
// center of the algebra. An Outcome[V, E] holds exactly a success value of
// V or an error of E, where E is any entity from the errs package.
//
// Producers build outcomes with Success/Error (or SuccessOf/ErrorOf for the
// common base-entity error side); combinators in solo, async and chain
// compose producer functions into pipelines without branching at each step.
//
// Unsafe unwraps (ValueOrFail/ErrorOrFail) panic on the wrong arm; defaulted
// unwraps (ValueOrDefault/ErrorOrDefault) return zero values. ResolvedKind
// reports the error's kind on the error arm and consults the value's Kinded
// capability on the success arm.
package outcome
