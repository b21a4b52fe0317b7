package errs

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// Authorization reports a refused action. Kind is Unauthorized when the
// caller is unknown and Forbidden when the caller is known but not allowed.
type Authorization struct {
	Base
	userID   string
	action   string
	resource string
}

// NewUnauthorized builds an authorization error for an unauthenticated
// caller. userID and resource may be empty.
func NewUnauthorized(userID, action, resource string, cause ...Entity) *Authorization {
	return newAuthorization(kind.Unauthorized, userID, action, resource, cause...)
}

// NewForbidden builds an authorization error for an authenticated caller
// lacking permission.
func NewForbidden(userID, action, resource string, cause ...Entity) *Authorization {
	return newAuthorization(kind.Forbidden, userID, action, resource, cause...)
}

func newAuthorization(k kind.Kind, userID, action, resource string, cause ...Entity) *Authorization {
	msg := fmt.Sprintf("action %q was refused", action)
	if resource != "" {
		msg = fmt.Sprintf("action %q on %q was refused", action, resource)
	}
	return &Authorization{
		Base:     newBase(k, DefaultCode(k), msg, cause...),
		userID:   userID,
		action:   action,
		resource: resource,
	}
}

func (e *Authorization) UserID() string   { return e.userID }
func (e *Authorization) Action() string   { return e.action }
func (e *Authorization) Resource() string { return e.resource }

// AdoptEntity converts an arbitrary entity into an Authorization error. The
// source kind is kept when it is already in the authorization family;
// otherwise Unauthorized is used.
func (*Authorization) AdoptEntity(src Entity) *Authorization {
	k := kind.Unauthorized
	if src.Kind() == kind.Forbidden {
		k = kind.Forbidden
	}
	a := newAuthorization(k, "", "", "", src)
	a.message = src.Message()
	return a
}
