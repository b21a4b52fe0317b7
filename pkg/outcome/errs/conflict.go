package errs

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome/kind"
)

// ConflictKind narrows what kind of conflict occurred.
type ConflictKind int

const (
	Duplicate ConflictKind = iota
	StaleState
	BusinessRuleViolation
)

func (c ConflictKind) String() string {
	switch c {
	case Duplicate:
		return "Duplicate"
	case StaleState:
		return "StaleState"
	case BusinessRuleViolation:
		return "BusinessRuleViolation"
	default:
		return "Unknown"
	}
}

// Conflict reports that an operation collided with existing state. The code
// is derived as "Conflict.<ConflictKind>".
type Conflict struct {
	Base
	conflictKind ConflictKind
	resourceType string
	params       map[string]any
}

func NewConflict(ck ConflictKind, resourceType string, params map[string]any, cause ...Entity) *Conflict {
	msg := fmt.Sprintf("%s conflict on %s", ck, resourceType)
	return &Conflict{
		Base:         newBase(kind.Conflict, DefaultCode(kind.Conflict)+"."+ck.String(), msg, cause...),
		conflictKind: ck,
		resourceType: resourceType,
		params:       cloneAnyMap(params),
	}
}

func (e *Conflict) ConflictKind() ConflictKind { return e.conflictKind }
func (e *Conflict) ResourceType() string       { return e.resourceType }

// ConflictingParams returns a copy of the parameters that collided.
func (e *Conflict) ConflictingParams() map[string]any {
	return cloneAnyMap(e.params)
}

// AdoptEntity converts an arbitrary entity into a business-rule Conflict,
// keeping the source message and linking it as cause.
func (*Conflict) AdoptEntity(src Entity) *Conflict {
	c := NewConflict(BusinessRuleViolation, "", nil, src)
	c.message = src.Message()
	return c
}

func cloneAnyMap(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
