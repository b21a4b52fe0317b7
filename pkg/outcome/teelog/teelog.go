package teelog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/outcome/pkg/outcome/errs"
)

// Success returns an IfSome/ThenDo effect that logs the success value at
// info level under the given event name.
func Success[T any](log zerolog.Logger, event string) func(ctx context.Context, v T) {
	return func(_ context.Context, v T) {
		log.Info().
			Str("event", event).
			Interface("value", v).
			Msg("outcome succeeded")
	}
}

// Error returns an IfNone/ElseDo effect that logs the error's kind, code,
// message and cause depth at error level.
func Error[E errs.Entity](log zerolog.Logger, event string) func(ctx context.Context, e E) {
	return func(_ context.Context, e E) {
		log.Error().
			Str("event", event).
			Str("kind", e.Kind().String()).
			Str("code", e.Code()).
			Int("cause_depth", errs.Depth(e)).
			Msg(e.Message())
	}
}

// Report is Error with the whole cause chain rendered through the columnar
// formatter, for chain ends where the full report is wanted in one record.
func Report[E errs.Entity](log zerolog.Logger, event string) func(ctx context.Context, e E) {
	return func(_ context.Context, e E) {
		log.Error().
			Str("event", event).
			Str("code", e.Code()).
			Str("chain", errs.FullString(e)).
			Msg(e.Message())
	}
}
