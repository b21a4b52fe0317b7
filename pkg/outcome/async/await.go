package async

import (
	"context"
	"errors"
)

var errClosed = errors.New("pending outcome closed without a result")

// awaitValue receives one value from ch, honoring surrounding-runtime
// cancellation and a producer that closed without delivering.
func awaitValue[T any](ctx context.Context, ch <-chan T) (T, error) {
	var zero T
	select {
	case v, ok := <-ch:
		if !ok {
			return zero, errClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// awaitDone waits for an effect's completion signal. Effects never alter
// the outcome, so cancellation simply stops the wait.
func awaitDone(ctx context.Context, ch <-chan struct{}) {
	select {
	case <-ch:
	case <-ctx.Done():
	}
}
