package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome/errs"
	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// Outcome holds exactly one of a success value of V or an error of E. The
// discriminant is fixed at construction; combinators always build new
// outcomes, never mutate one.
type Outcome[V any, E errs.Entity] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       E
	isSuccess bool
}

// Of fixes the error side to the base Entity interface, the common shape
// for chains that do not narrow their error type.
type Of[V any] = Outcome[V, errs.Entity]

func Success[V any, E errs.Entity](v V) Outcome[V, E] {
	return Outcome[V, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Error[V any, E errs.Entity](e E) Outcome[V, E] {
	return Outcome[V, E]{
		err:       e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessOf and ErrorOf build outcomes with the base Entity error side.
func SuccessOf[V any](v V) Of[V] {
	return Success[V, errs.Entity](v)
}

func ErrorOf[V any](e errs.Entity) Of[V] {
	return Error[V, errs.Entity](e)
}

// WidenError admits an error of any entity type into an outcome declaring
// error type E. When src already is an E at runtime it is reused verbatim;
// otherwise the conversion protocol builds an E with src linked as cause.
// This lets a narrow error produced deep in a pipeline become the
// pipeline's declared error type without the caller converting by hand.
func WidenError[V any, E errs.Entity](src errs.Entity) Outcome[V, E] {
	return Error[V, E](errs.Lift[E](src))
}

// ErrorFrom re-types the error arm of from onto a new value/error pairing,
// converting the error when the declared error types differ. Identity and
// creation time carry over from the source outcome.
func ErrorFrom[In, Out any, EIn, EOut errs.Entity](from Outcome[In, EIn]) Outcome[Out, EOut] {
	return Outcome[Out, EOut]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       errs.Lift[EOut](from.err),
		isSuccess: false,
	}
}

// FailFrom carries an error arm across a value-type change without touching
// the error type (teacher shape for pass-through arms).
func FailFrom[In, Out any, E errs.Entity](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isSuccess: false,
	}
}

func (o Outcome[V, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[V, E]) IsError() bool {
	return !o.isSuccess
}

// ValueOrFail returns the success value. Calling it on an error outcome is
// a caller bug: it panics with an InvalidState entity, never a silent
// default. An optional message overrides the default panic message.
func (o Outcome[V, E]) ValueOrFail(msg ...string) V {
	if !o.isSuccess {
		panic(errs.InvalidState(failMessage(msg,
			fmt.Sprintf("outcome holds an error, not a value: %v", error(o.err)))))
	}
	return o.value
}

// ErrorOrFail returns the error. Calling it on a success outcome panics
// with an InvalidState entity.
func (o Outcome[V, E]) ErrorOrFail(msg ...string) E {
	if o.isSuccess {
		panic(errs.InvalidState(failMessage(msg,
			fmt.Sprintf("outcome holds a value, not an error: %v", any(o.value)))))
	}
	return o.err
}

// ValueOrDefault returns the success value, or the zero V on the error arm.
func (o Outcome[V, E]) ValueOrDefault() V {
	if !o.isSuccess {
		var zero V
		return zero
	}
	return o.value
}

// ErrorOrDefault returns the error, or the zero E on the success arm.
func (o Outcome[V, E]) ErrorOrDefault() E {
	if o.isSuccess {
		var zero E
		return zero
	}
	return o.err
}

// ResolvedKind returns the error's kind on the error arm. On the success
// arm it consults the value's Kinded capability when present, else the
// generic Success kind.
func (o Outcome[V, E]) ResolvedKind() kind.Kind {
	if !o.isSuccess {
		return o.err.Kind()
	}
	if k, ok := any(o.value).(Kinded); ok {
		return k.OutcomeKind()
	}
	return kind.Success
}

func (o Outcome[V, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[V, E]) Id() uuid.UUID {
	return o.id
}

func failMessage(msg []string, fallback string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return fallback
}
