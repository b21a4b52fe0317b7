package errs

import (
	"sort"
	"strings"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// Validation reports invalid input. Field errors map field names to the
// message describing what is wrong with each.
type Validation struct {
	Base
	fieldErrors map[string]string
}

// NewValidation builds a validation error. fieldErrors may be nil when the
// failure is not attributable to individual fields. An optional cause links
// the error this one was derived from.
func NewValidation(message string, fieldErrors map[string]string, cause ...Entity) *Validation {
	return &Validation{
		Base:        newBase(kind.Validation, DefaultCode(kind.Validation), message, cause...),
		fieldErrors: cloneStringMap(fieldErrors),
	}
}

// FieldErrors returns a copy of the per-field messages; mutating it does not
// affect the error.
func (e *Validation) FieldErrors() map[string]string {
	return cloneStringMap(e.fieldErrors)
}

func (e *Validation) Error() string {
	if len(e.fieldErrors) == 0 {
		return e.Base.Error()
	}
	fields := make([]string, 0, len(e.fieldErrors))
	for f := range e.fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return e.Base.Error() + " [" + strings.Join(fields, ", ") + "]"
}

// AdoptEntity converts an arbitrary entity into a Validation error, keeping
// the source message and linking the source as cause.
func (*Validation) AdoptEntity(src Entity) *Validation {
	return NewValidation(src.Message(), nil, src)
}

func cloneStringMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
