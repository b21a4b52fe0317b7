package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/errs"
)

// Select applies f to the success value and rewraps the result. The error
// arm passes through untouched; f is never invoked on it.
func Select[In, Out any, E errs.Entity](ctx context.Context, in outcome.Outcome[In, E],
	f func(ctx context.Context, v In) Out) outcome.Outcome[Out, E] {

	if in.IsSuccess() {
		return outcome.Success[Out, E](f(ctx, in.ValueOrFail()))
	}
	return outcome.FailFrom[In, Out](in)
}

// Then binds f over the success value, admitting a continuation that itself
// may fail. On the error arm the continuation is never invoked; when the
// declared error types differ the original error is lifted into EOut via
// the conversion protocol, reused verbatim when its runtime type already
// matches.
func Then[In, Out any, EIn, EOut errs.Entity](ctx context.Context, in outcome.Outcome[In, EIn],
	f func(ctx context.Context, v In) outcome.Outcome[Out, EOut]) outcome.Outcome[Out, EOut] {

	if in.IsSuccess() {
		return f(ctx, in.ValueOrFail())
	}
	return outcome.ErrorFrom[In, Out, EIn, EOut](in)
}

// Ensure guards the success arm with pred. A true predicate leaves the
// outcome unchanged; a false one replaces it with onFalse. On the error arm
// the predicate is never evaluated.
func Ensure[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	pred func(ctx context.Context, v T) bool, onFalse E) outcome.Outcome[T, E] {

	if in.IsSuccess() && !pred(ctx, in.ValueOrFail()) {
		return outcome.Error[T, E](onFalse)
	}
	return in
}

// EnsureWith is Ensure for callers holding only a generic entity: on a
// false predicate it synthesizes an E wrapping cause via the conversion
// protocol.
func EnsureWith[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	pred func(ctx context.Context, v T) bool, cause errs.Entity) outcome.Outcome[T, E] {

	if in.IsSuccess() && !pred(ctx, in.ValueOrFail()) {
		return outcome.WidenError[T, E](cause)
	}
	return in
}

// Recover binds f over the error arm, giving the chain a chance to re-admit
// a success or translate the error. The success arm passes through.
func Recover[T any, EIn, EOut errs.Entity](ctx context.Context, in outcome.Outcome[T, EIn],
	f func(ctx context.Context, e EIn) outcome.Outcome[T, EOut]) outcome.Outcome[T, EOut] {

	if in.IsError() {
		return f(ctx, in.ErrorOrFail())
	}
	return outcome.Success[T, EOut](in.ValueOrFail())
}

// OrElse exits the algebra with the success value, or fallback on the error
// arm.
func OrElse[T any, E errs.Entity](_ context.Context, in outcome.Outcome[T, E], fallback T) T {
	if in.IsSuccess() {
		return in.ValueOrFail()
	}
	return fallback
}

// OrElseBy exits the algebra with the success value, or the result of f
// applied to the error. A nil f is a caller bug and panics with ArgumentNil
// before anything else is evaluated.
func OrElseBy[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	f func(ctx context.Context, e E) T) T {

	if f == nil {
		panic(errs.ArgumentNil("f"))
	}
	if in.IsSuccess() {
		return in.ValueOrFail()
	}
	return f(ctx, in.ErrorOrFail())
}

// OrElseErr forwards the success arm unchanged and replaces the error arm
// with the supplied error. A nil forward panics with ArgumentNil before
// anything else is evaluated.
func OrElseErr[T any, E errs.Entity](_ context.Context, in outcome.Outcome[T, E], forward E) outcome.Outcome[T, E] {
	if outcome.IsNil(forward) {
		panic(errs.ArgumentNil("forward"))
	}
	if in.IsSuccess() {
		return in
	}
	return outcome.Error[T, E](forward)
}

// Match eliminates the outcome totally: exactly one of the two handlers
// runs. Both are required; a nil handler panics with ArgumentNil before
// either arm is inspected. This is the only exit from the algebra that
// forces the caller to handle both arms.
func Match[In, R any, E errs.Entity](ctx context.Context, in outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, v In) R,
	onError func(ctx context.Context, e E) R) R {

	if onSuccess == nil {
		panic(errs.ArgumentNil("onSuccess"))
	}
	if onError == nil {
		panic(errs.ArgumentNil("onError"))
	}
	if in.IsSuccess() {
		return onSuccess(ctx, in.ValueOrFail())
	}
	return onError(ctx, in.ErrorOrFail())
}

// IfSome runs effect on the success value and returns the outcome unchanged
// for continued chaining.
func IfSome[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	effect func(ctx context.Context, v T)) outcome.Outcome[T, E] {

	if in.IsSuccess() && effect != nil {
		effect(ctx, in.ValueOrFail())
	}
	return in
}

// IfNone runs effect on the error and returns the outcome unchanged.
func IfNone[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	effect func(ctx context.Context, e E)) outcome.Outcome[T, E] {

	if in.IsError() && effect != nil {
		effect(ctx, in.ErrorOrFail())
	}
	return in
}

// ThenDo is IfSome at the end of a chain: the effect runs on the success
// value and nothing is returned.
func ThenDo[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	effect func(ctx context.Context, v T)) {

	if in.IsSuccess() && effect != nil {
		effect(ctx, in.ValueOrFail())
	}
}

// ElseDo is IfNone at the end of a chain.
func ElseDo[T any, E errs.Entity](ctx context.Context, in outcome.Outcome[T, E],
	effect func(ctx context.Context, e E)) {

	if in.IsError() && effect != nil {
		effect(ctx, in.ErrorOrFail())
	}
}

// Try adapts an ordinary (value, error) function into the algebra: a
// non-nil error becomes an Unexpected entity lifted into E.
func Try[In, Out any, E errs.Entity](ctx context.Context, in outcome.Outcome[In, E],
	f func(ctx context.Context, v In) (Out, error)) outcome.Outcome[Out, E] {

	if in.IsSuccess() {
		out, err := f(ctx, in.ValueOrFail())
		if err != nil {
			return outcome.WidenError[Out, E](errs.NewUnexpected(err))
		}
		return outcome.Success[Out, E](out)
	}
	return outcome.FailFrom[In, Out](in)
}
