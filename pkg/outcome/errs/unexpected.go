package errs

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// Unexpected wraps a platform error that the domain has no category for.
// Construction walks the wrapped error's own Unwrap chain and links one
// Unexpected per level as cause, the only place a cause is derived rather
// than supplied.
type Unexpected struct {
	Base
	wrapped error
}

func NewUnexpected(err error, cause ...Entity) *Unexpected {
	u := &Unexpected{
		Base:    newBase(kind.Unexpected, DefaultCode(kind.Unexpected), messageOf(err), cause...),
		wrapped: err,
	}
	if u.cause == nil && err != nil {
		if inner := errors.Unwrap(err); inner != nil {
			u.cause = NewUnexpected(inner)
		}
	}
	return u
}

// Wrapped returns the platform error this entity was built from.
func (e *Unexpected) Wrapped() error { return e.wrapped }

// Unwrap prefers the entity cause chain; when there is none the wrapped
// platform error is exposed so errors.Is still reaches it.
func (e *Unexpected) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.wrapped
}

// AdoptEntity converts an arbitrary entity into an Unexpected error,
// keeping the source message and linking it as cause.
func (*Unexpected) AdoptEntity(src Entity) *Unexpected {
	u := &Unexpected{
		Base: newBase(kind.Unexpected, DefaultCode(kind.Unexpected), src.Message(), src),
	}
	return u
}

func messageOf(err error) string {
	if err == nil {
		return "unexpected error"
	}
	return err.Error()
}
