package errs

import "github.com/ib-77/outcome/pkg/outcome/kind"

// Failure is the general-purpose domain failure. ContextData carries
// free-form diagnostic values that belong to the failure site.
type Failure struct {
	Base
	contextData map[string]any
}

func NewFailure(message string, contextData map[string]any, cause ...Entity) *Failure {
	return &Failure{
		Base:        newBase(kind.Failure, DefaultCode(kind.Failure), message, cause...),
		contextData: cloneAnyMap(contextData),
	}
}

// ContextData returns a copy of the diagnostic values.
func (e *Failure) ContextData() map[string]any {
	return cloneAnyMap(e.contextData)
}

// AdoptEntity converts an arbitrary entity into a Failure, keeping the
// source message and linking it as cause.
func (*Failure) AdoptEntity(src Entity) *Failure {
	return NewFailure(src.Message(), nil, src)
}
