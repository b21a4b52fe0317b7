package errs

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// NotFound reports that a named entity could not be located by its
// identifier. The code is derived as "NotFound.<EntityName>".
type NotFound struct {
	Base
	entityName string
	identifier any
}

func NewNotFound(entityName string, identifier any, cause ...Entity) *NotFound {
	code := DefaultCode(kind.NotFound)
	if entityName != "" {
		code = code + "." + entityName
	}
	msg := fmt.Sprintf("%s with identifier %v was not found", entityName, identifier)
	return &NotFound{
		Base:       newBase(kind.NotFound, code, msg, cause...),
		entityName: entityName,
		identifier: identifier,
	}
}

func (e *NotFound) EntityName() string { return e.entityName }
func (e *NotFound) Identifier() any    { return e.identifier }

// AdoptEntity converts an arbitrary entity into a NotFound error with an
// unnamed entity, keeping the source message and linking it as cause.
func (*NotFound) AdoptEntity(src Entity) *NotFound {
	n := NewNotFound("", nil, src)
	n.message = src.Message()
	return n
}
