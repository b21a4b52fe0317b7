package errs

import (
	"fmt"
	"time"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// Entity is the contract every structured error in the algebra satisfies.
// Implementations are immutable after construction.
type Entity interface {
	error

	// Kind returns the failure category; always from the failure family.
	Kind() kind.Kind
	// Code returns the machine-readable code, e.g. "NotFound.User".
	Code() string
	// Message returns the human-readable description.
	Message() string
	// Timestamp returns the creation time, second precision, UTC.
	Timestamp() time.Time
	// Cause returns the entity this error was derived from, or nil.
	Cause() Entity
	// Unwrap exposes the cause to errors.Is/errors.As traversal.
	Unwrap() error
}

// Base carries the fields shared by all specializations. It is embedded, not
// used on its own; constructors of the concrete types build it via newBase.
type Base struct {
	kind      kind.Kind
	code      string
	message   string
	timestamp time.Time
	cause     Entity
}

func newBase(k kind.Kind, code, message string, cause ...Entity) Base {
	b := Base{
		kind:      k,
		code:      code,
		message:   message,
		timestamp: time.Now().UTC().Truncate(time.Second),
	}
	if len(cause) > 0 {
		b.cause = cause[0]
	}
	return b
}

func (b *Base) Kind() kind.Kind      { return b.kind }
func (b *Base) Code() string         { return b.code }
func (b *Base) Message() string      { return b.message }
func (b *Base) Timestamp() time.Time { return b.timestamp }
func (b *Base) Cause() Entity        { return b.cause }

func (b *Base) Error() string {
	if b.message == "" {
		return b.code
	}
	return fmt.Sprintf("%s: %s", b.code, b.message)
}

// Unwrap returns the cause for stdlib traversal. A typed-nil cause is
// reported as plain nil so errors.Is terminates cleanly.
func (b *Base) Unwrap() error {
	if b.cause == nil {
		return nil
	}
	return b.cause
}

// Is implements structural equality for errors.Is: two entities match when
// they share kind and code. Message, timestamp and cause are excluded, so a
// deeply contextual error matches a bare categorical prototype.
func (b *Base) Is(target error) bool {
	t, ok := target.(Entity)
	return ok && t.Kind() == b.kind && t.Code() == b.code
}

// Equal reports structural equality of two entities on (kind, code).
func Equal(a, b Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Code() == b.Code()
}

// Flatten walks the cause chain from e outward and returns it as a list,
// self first, root cause last. A nil entity yields an empty list.
func Flatten(e Entity) []Entity {
	var out []Entity
	for cur := e; cur != nil; cur = cur.Cause() {
		out = append(out, cur)
	}
	return out
}

// Depth returns the number of links in the cause chain of e, zero for a
// root error.
func Depth(e Entity) int {
	n := 0
	for cur := e; cur != nil; cur = cur.Cause() {
		n++
	}
	if n == 0 {
		return 0
	}
	return n - 1
}
