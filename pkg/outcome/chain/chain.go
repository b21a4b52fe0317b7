package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/errs"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome with context to enable fluent chaining. The error
// side is fixed to the base Entity interface; chains that narrow their
// error type use the solo functions directly.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Of[T]
}

// Start creates a new chain from an outcome.
func Start[T any](ctx context.Context, res outcome.Of[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, outcome.SuccessOf(value))
}

// FromError creates a new chain already on the error arm.
func FromError[T any](ctx context.Context, e errs.Entity) *Chain[T] {
	return Start(ctx, outcome.ErrorOf[T](e))
}

// Result returns the underlying outcome.
func (c *Chain[T]) Result() outcome.Of[T] {
	return c.res
}

// Then chains a function that returns a new outcome.
func Then[T, U any](c *Chain[T], f func(ctx context.Context, v T) outcome.Of[U]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: solo.Then(c.ctx, c.res, f)}
}

// Select chains a pure transformation.
func Select[T, U any](c *Chain[T], f func(ctx context.Context, v T) U) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: solo.Select(c.ctx, c.res, f)}
}

// ThenTry chains a function that returns (value, error).
func ThenTry[T, U any](c *Chain[T], f func(ctx context.Context, v T) (U, error)) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, f)}
}

// Ensure guards the success arm with a predicate.
func (c *Chain[T]) Ensure(pred func(ctx context.Context, v T) bool, onFalse errs.Entity) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, res: solo.Ensure(c.ctx, c.res, pred, onFalse)}
}

// Recover gives the error arm a chance to re-admit a success.
func (c *Chain[T]) Recover(f func(ctx context.Context, e errs.Entity) outcome.Of[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, res: solo.Recover(c.ctx, c.res, f)}
}

// IfSome runs a side effect on the success value without changing the
// outcome.
func (c *Chain[T]) IfSome(effect func(ctx context.Context, v T)) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, res: solo.IfSome(c.ctx, c.res, effect)}
}

// IfNone runs a side effect on the error without changing the outcome.
func (c *Chain[T]) IfNone(effect func(ctx context.Context, e errs.Entity)) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, res: solo.IfNone(c.ctx, c.res, effect)}
}

// OrElse collapses the chain to its value, or fallback on the error arm.
func (c *Chain[T]) OrElse(fallback T) T {
	return solo.OrElse(c.ctx, c.res, fallback)
}

// OrElseBy collapses the chain to its value, or f applied to the error.
func (c *Chain[T]) OrElseBy(f func(ctx context.Context, e errs.Entity) T) T {
	return solo.OrElseBy(c.ctx, c.res, f)
}

// ThenDo ends the chain with a success effect.
func (c *Chain[T]) ThenDo(effect func(ctx context.Context, v T)) {
	solo.ThenDo(c.ctx, c.res, effect)
}

// ElseDo ends the chain with an error effect.
func (c *Chain[T]) ElseDo(effect func(ctx context.Context, e errs.Entity)) {
	solo.ElseDo(c.ctx, c.res, effect)
}

// Match collapses the chain totally; both handlers are required.
func Match[T, R any](c *Chain[T], onSuccess func(ctx context.Context, v T) R,
	onError func(ctx context.Context, e errs.Entity) R) R {
	return solo.Match(c.ctx, c.res, onSuccess, onError)
}

// Errors returns the chain's error and its causes as a flat list, outermost
// first, or nil on the success arm.
func (c *Chain[T]) Errors() []errs.Entity {
	if c.res.IsSuccess() {
		return nil
	}
	return errs.Flatten(c.res.ErrorOrFail())
}
