package errs

import (
	"fmt"
	"reflect"
)

// Adopter is the conversion path a concrete entity type exposes so the
// algebra can lift a foreign entity into it when a chain changes its
// declared error type. AdoptEntity must not touch its receiver: it is
// invoked on the type's zero value purely for dispatch.
type Adopter[E any] interface {
	AdoptEntity(src Entity) E
}

// Lift converts src into the target entity type E.
//
// Reuse is preferred: when src already is an E at runtime, or E is the
// Entity interface itself, src is returned verbatim with no allocation and
// no cause link. Otherwise the target's AdoptEntity path builds a new E
// with src nested as cause; a target that can absorb a conversion-failed
// Failure degrades to that instead.
//
// A concrete E with none of these paths is a mis-parameterized chain, a
// programmer error: Lift panics with InvalidState naming the type, so the
// missing Adopter implementation surfaces at the conversion point instead
// of as a nil entity deep in the chain. CanLift reports the paths without
// panicking.
func Lift[E Entity](src Entity) E {
	if src == nil {
		var zero E
		return zero
	}
	if direct, ok := any(src).(E); ok {
		return direct
	}

	var zero E
	if adopter, ok := any(zero).(Adopter[E]); ok {
		return adopter.AdoptEntity(src)
	}

	failed := conversionFailed(src, targetName[E]())
	if e, ok := any(failed).(E); ok {
		return e
	}
	panic(InvalidState("no conversion path from " + fmt.Sprintf("%T", src) +
		" to " + targetName[E]() + ": implement Adopter"))
}

// CanLift reports whether Lift can produce a real E from src, either by
// reuse or through an adoption path.
func CanLift[E Entity](src Entity) bool {
	if _, ok := any(src).(E); ok {
		return true
	}
	var zero E
	_, ok := any(zero).(Adopter[E])
	return ok
}

func conversionFailed(src Entity, target string) *Failure {
	f := NewFailure(
		fmt.Sprintf("cannot convert %T to %s", src, target),
		map[string]any{"source_code": src.Code()},
		src,
	)
	f.code = CodeConversionFailed
	return f
}

func targetName[E any]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}
