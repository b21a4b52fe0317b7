package kind

// Kind classifies the categorical outcome of an operation. The success
// family describes what happened to the subject; the failure family
// describes why the operation could not complete.
type Kind int

const (
	// Success family
	Success Kind = iota
	Created
	Accepted
	Updated
	Unchanged
	Deleted

	// Failure family
	Validation
	Unauthorized
	Forbidden
	NotFound
	Conflict
	Locked
	Throttled
	Failure
	Unexpected
)

var names = map[Kind]string{
	Success:      "Success",
	Created:      "Created",
	Accepted:     "Accepted",
	Updated:      "Updated",
	Unchanged:    "Unchanged",
	Deleted:      "Deleted",
	Validation:   "Validation",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	NotFound:     "NotFound",
	Conflict:     "Conflict",
	Locked:       "Locked",
	Throttled:    "Throttled",
	Failure:      "Failure",
	Unexpected:   "Unexpected",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "Unknown"
}

// IsSuccess reports whether k belongs to the success family.
func (k Kind) IsSuccess() bool {
	return k >= Success && k <= Deleted
}

// IsFailure reports whether k belongs to the failure family.
func (k Kind) IsFailure() bool {
	return k >= Validation && k <= Unexpected
}

// All returns every kind in declaration order, success family first.
func All() []Kind {
	out := make([]Kind, 0, len(names))
	for k := Success; k <= Unexpected; k++ {
		out = append(out, k)
	}
	return out
}
