package async

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/errs"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Pending is an outcome that has not resolved yet: a single-delivery
// channel carrying exactly one Outcome. Every combinator here consumes its
// input exactly once and delivers exactly one result, so chains stay
// strictly sequential; no combinator spawns fan-out concurrency.
type Pending[V any, E errs.Entity] <-chan outcome.Outcome[V, E]

// Start lifts an already-resolved outcome into a Pending.
func Start[V any, E errs.Entity](o outcome.Outcome[V, E]) Pending[V, E] {
	ch := make(chan outcome.Outcome[V, E], 1)
	ch <- o
	close(ch)
	return ch
}

// Go runs produce in its own goroutine and returns its future result.
func Go[V any, E errs.Entity](ctx context.Context,
	produce func(ctx context.Context) outcome.Outcome[V, E]) Pending[V, E] {

	ch := make(chan outcome.Outcome[V, E], 1)
	go func() {
		defer close(ch)
		ch <- produce(ctx)
	}()
	return ch
}

// Await collapses a Pending to its outcome. A surrounding-runtime
// cancellation or a producer that closed without delivering resolves to an
// Unexpected error rather than blocking forever.
func Await[V any, E errs.Entity](ctx context.Context, p Pending[V, E]) outcome.Outcome[V, E] {
	select {
	case o, ok := <-p:
		if !ok {
			return outcome.WidenError[V, E](errs.NewUnexpected(errClosed))
		}
		return o
	case <-ctx.Done():
		return outcome.WidenError[V, E](errs.NewUnexpected(ctx.Err()))
	}
}

// pipe applies one resolved-outcome step to a pending input in its own
// goroutine. The result channel is buffered so an abandoned chain never
// leaks its goroutine.
func pipe[In, Out any, EIn, EOut errs.Entity](ctx context.Context, in Pending[In, EIn],
	step func(ctx context.Context, o outcome.Outcome[In, EIn]) outcome.Outcome[Out, EOut]) Pending[Out, EOut] {

	out := make(chan outcome.Outcome[Out, EOut], 1)
	go func() {
		defer close(out)
		out <- step(ctx, Await(ctx, in))
	}()
	return out
}

// Select applies a synchronous mapping to a pending outcome.
func Select[In, Out any, E errs.Entity](ctx context.Context, in Pending[In, E],
	f func(ctx context.Context, v In) Out) Pending[Out, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[In, E]) outcome.Outcome[Out, E] {
		return solo.Select(ctx, o, f)
	})
}

// SelectAsync applies a mapping whose result is itself pending. The chain
// suspends at the continuation's delivery and resumes with its value.
func SelectAsync[In, Out any, E errs.Entity](ctx context.Context, in Pending[In, E],
	f func(ctx context.Context, v In) <-chan Out) Pending[Out, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[In, E]) outcome.Outcome[Out, E] {
		if o.IsError() {
			return outcome.FailFrom[In, Out](o)
		}
		v, err := awaitValue(ctx, f(ctx, o.ValueOrFail()))
		if err != nil {
			return outcome.WidenError[Out, E](errs.NewUnexpected(err))
		}
		return outcome.Success[Out, E](v)
	})
}

// Then binds a synchronous continuation over a pending outcome, lifting the
// error type when the continuation declares a different one.
func Then[In, Out any, EIn, EOut errs.Entity](ctx context.Context, in Pending[In, EIn],
	f func(ctx context.Context, v In) outcome.Outcome[Out, EOut]) Pending[Out, EOut] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[In, EIn]) outcome.Outcome[Out, EOut] {
		return solo.Then(ctx, o, f)
	})
}

// ThenAsync binds a continuation whose outcome is itself pending.
func ThenAsync[In, Out any, EIn, EOut errs.Entity](ctx context.Context, in Pending[In, EIn],
	f func(ctx context.Context, v In) Pending[Out, EOut]) Pending[Out, EOut] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[In, EIn]) outcome.Outcome[Out, EOut] {
		if o.IsError() {
			return outcome.ErrorFrom[In, Out, EIn, EOut](o)
		}
		return Await(ctx, f(ctx, o.ValueOrFail()))
	})
}

// Ensure guards a pending success with a synchronous predicate.
func Ensure[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	pred func(ctx context.Context, v T) bool, onFalse E) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		return solo.Ensure(ctx, o, pred, onFalse)
	})
}

// EnsureAsync guards a pending success with a predicate that resolves
// asynchronously.
func EnsureAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	pred func(ctx context.Context, v T) <-chan bool, onFalse E) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		if o.IsError() {
			return o
		}
		ok, err := awaitValue(ctx, pred(ctx, o.ValueOrFail()))
		if err != nil {
			return outcome.WidenError[T, E](errs.NewUnexpected(err))
		}
		if !ok {
			return outcome.Error[T, E](onFalse)
		}
		return o
	})
}

// EnsureWith guards a pending success with a synchronous predicate,
// synthesizing the replacement error from a generic cause.
func EnsureWith[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	pred func(ctx context.Context, v T) bool, cause errs.Entity) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		return solo.EnsureWith(ctx, o, pred, cause)
	})
}

// EnsureWithAsync is EnsureWith with a predicate that resolves
// asynchronously.
func EnsureWithAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	pred func(ctx context.Context, v T) <-chan bool, cause errs.Entity) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		if o.IsError() {
			return o
		}
		ok, err := awaitValue(ctx, pred(ctx, o.ValueOrFail()))
		if err != nil {
			return outcome.WidenError[T, E](errs.NewUnexpected(err))
		}
		if !ok {
			return outcome.WidenError[T, E](cause)
		}
		return o
	})
}

// Recover binds a synchronous recovery over a pending error arm.
func Recover[T any, EIn, EOut errs.Entity](ctx context.Context, in Pending[T, EIn],
	f func(ctx context.Context, e EIn) outcome.Outcome[T, EOut]) Pending[T, EOut] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, EIn]) outcome.Outcome[T, EOut] {
		return solo.Recover(ctx, o, f)
	})
}

// RecoverAsync binds a recovery whose outcome is itself pending.
func RecoverAsync[T any, EIn, EOut errs.Entity](ctx context.Context, in Pending[T, EIn],
	f func(ctx context.Context, e EIn) Pending[T, EOut]) Pending[T, EOut] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, EIn]) outcome.Outcome[T, EOut] {
		if o.IsSuccess() {
			return outcome.Success[T, EOut](o.ValueOrFail())
		}
		return Await(ctx, f(ctx, o.ErrorOrFail()))
	})
}

// IfSome runs effect on a pending success and forwards the outcome.
func IfSome[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, v T)) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		return solo.IfSome(ctx, o, effect)
	})
}

// IfSomeAsync runs an asynchronous effect on a pending success; the
// outcome is forwarded once the effect's channel closes.
func IfSomeAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, v T) <-chan struct{}) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		if o.IsSuccess() && effect != nil {
			awaitDone(ctx, effect(ctx, o.ValueOrFail()))
		}
		return o
	})
}

// IfNone runs effect on a pending error and forwards the outcome.
func IfNone[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, e E)) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		return solo.IfNone(ctx, o, effect)
	})
}

// IfNoneAsync runs an asynchronous effect on a pending error; the outcome
// is forwarded once the effect's channel closes.
func IfNoneAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, e E) <-chan struct{}) Pending[T, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		if o.IsError() && effect != nil {
			awaitDone(ctx, effect(ctx, o.ErrorOrFail()))
		}
		return o
	})
}

// ThenDo runs a terminal success effect; the returned channel closes when
// the chain has finished.
func ThenDo[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, v T)) <-chan struct{} {

	done := make(chan struct{})
	go func() {
		defer close(done)
		solo.ThenDo(ctx, Await(ctx, in), effect)
	}()
	return done
}

// ElseDo runs a terminal error effect; the returned channel closes when the
// chain has finished.
func ElseDo[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, e E)) <-chan struct{} {

	done := make(chan struct{})
	go func() {
		defer close(done)
		solo.ElseDo(ctx, Await(ctx, in), effect)
	}()
	return done
}

// ThenDoAsync is ThenDo with an asynchronous effect; the returned channel
// closes once the effect has fully completed.
func ThenDoAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, v T) <-chan struct{}) <-chan struct{} {

	done := make(chan struct{})
	go func() {
		defer close(done)
		o := Await(ctx, in)
		if o.IsSuccess() && effect != nil {
			awaitDone(ctx, effect(ctx, o.ValueOrFail()))
		}
	}()
	return done
}

// ElseDoAsync is ElseDo with an asynchronous effect.
func ElseDoAsync[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	effect func(ctx context.Context, e E) <-chan struct{}) <-chan struct{} {

	done := make(chan struct{})
	go func() {
		defer close(done)
		o := Await(ctx, in)
		if o.IsError() && effect != nil {
			awaitDone(ctx, effect(ctx, o.ErrorOrFail()))
		}
	}()
	return done
}

// Match eliminates a pending outcome totally; the single R is delivered on
// the returned channel. Handler presence is checked before anything runs.
func Match[In, R any, E errs.Entity](ctx context.Context, in Pending[In, E],
	onSuccess func(ctx context.Context, v In) R,
	onError func(ctx context.Context, e E) R) <-chan R {

	if onSuccess == nil {
		panic(errs.ArgumentNil("onSuccess"))
	}
	if onError == nil {
		panic(errs.ArgumentNil("onError"))
	}
	out := make(chan R, 1)
	go func() {
		defer close(out)
		out <- solo.Match(ctx, Await(ctx, in), onSuccess, onError)
	}()
	return out
}

// OrElse resolves a pending outcome to its value, or fallback on the error
// arm.
func OrElse[T any, E errs.Entity](ctx context.Context, in Pending[T, E], fallback T) <-chan T {
	out := make(chan T, 1)
	go func() {
		defer close(out)
		out <- solo.OrElse(ctx, Await(ctx, in), fallback)
	}()
	return out
}

// OrElseBy resolves a pending outcome to its value, or f applied to the
// error. A nil f panics with ArgumentNil before anything runs.
func OrElseBy[T any, E errs.Entity](ctx context.Context, in Pending[T, E],
	f func(ctx context.Context, e E) T) <-chan T {

	if f == nil {
		panic(errs.ArgumentNil("f"))
	}
	out := make(chan T, 1)
	go func() {
		defer close(out)
		out <- solo.OrElseBy(ctx, Await(ctx, in), f)
	}()
	return out
}

// OrElseErr forwards a pending success unchanged and replaces the error arm
// with the supplied error. A nil forward panics with ArgumentNil before
// anything runs.
func OrElseErr[T any, E errs.Entity](ctx context.Context, in Pending[T, E], forward E) Pending[T, E] {
	if outcome.IsNil(forward) {
		panic(errs.ArgumentNil("forward"))
	}
	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[T, E]) outcome.Outcome[T, E] {
		return solo.OrElseErr(ctx, o, forward)
	})
}

// Try adapts an ordinary (value, error) function over a pending outcome: a
// non-nil error becomes an Unexpected entity lifted into E.
func Try[In, Out any, E errs.Entity](ctx context.Context, in Pending[In, E],
	f func(ctx context.Context, v In) (Out, error)) Pending[Out, E] {

	return pipe(ctx, in, func(ctx context.Context, o outcome.Outcome[In, E]) outcome.Outcome[Out, E] {
		return solo.Try(ctx, o, f)
	})
}
