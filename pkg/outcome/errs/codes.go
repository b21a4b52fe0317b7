package errs

import "github.com/ib-77/outcome/pkg/outcome/kind"

// Codes reserved by the algebra itself. Domain code spaces are open; the
// specializations derive theirs from their fields (e.g. "NotFound.User").
const (
	// CodeInvalidState marks a wrong-arm unsafe unwrap, a caller bug.
	CodeInvalidState = "InvalidState"
	// CodeArgumentNil marks a required function argument that was nil.
	CodeArgumentNil = "ArgumentNil"
	// CodeConversionFailed marks an entity that could not be converted to
	// the error type a chain declared.
	CodeConversionFailed = "ConversionFailed"
)

// DefaultCode returns the code used when a specialization has nothing more
// specific to derive one from.
func DefaultCode(k kind.Kind) string {
	return k.String()
}

// InvalidState builds the panic payload for unsafe unwraps called on the
// wrong arm. It is a programmer error, not a domain outcome.
func InvalidState(message string) *Failure {
	f := NewFailure(message, nil)
	f.code = CodeInvalidState
	return f
}

// ArgumentNil builds the panic payload for a nil required function, naming
// the missing argument.
func ArgumentNil(name string) *Failure {
	f := NewFailure("required argument is nil: "+name, map[string]any{"argument": name})
	f.code = CodeArgumentNil
	return f
}
