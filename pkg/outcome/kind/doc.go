// Package kind defines the closed taxonomy of outcome categories shared by
// successful values and error entities.
//
// The success family (Success, Created, Accepted, Updated, Unchanged,
// Deleted) never appears inside an error; the failure family (Validation,
// Unauthorized, Forbidden, NotFound, Conflict, Locked, Throttled, Failure,
// Unexpected) always does, exactly one per error.
package kind
