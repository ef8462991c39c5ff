package domain

import "errors"

// Status classifies an expected failure by the transport status class it
// maps to at the boundary.
type Status int

const (
	StatusBadRequest Status = iota + 1
	StatusUnauthorized
	StatusForbidden
	StatusNotFound
	StatusConflict
)

// Error is a tagged failure raised by use-cases for expected outcomes such as
// failed validations. Infrastructure faults are never wrapped in an Error;
// they propagate as plain errors and surface as a server error at the boundary.
type Error struct {
	Status  Status
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(message string) *Error   { return &Error{Status: StatusBadRequest, Message: message} }
func Unauthorized(message string) *Error { return &Error{Status: StatusUnauthorized, Message: message} }
func Forbidden(message string) *Error    { return &Error{Status: StatusForbidden, Message: message} }
func NotFound(message string) *Error     { return &Error{Status: StatusNotFound, Message: message} }
func Conflict(message string) *Error     { return &Error{Status: StatusConflict, Message: message} }

// StatusOf extracts the status class of a tagged failure. The second return
// is false for untagged (infrastructure) errors.
func StatusOf(err error) (Status, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Status, true
	}
	return 0, false
}

// IsStatus reports whether err is a tagged failure of the given class.
func IsStatus(err error, status Status) bool {
	s, ok := StatusOf(err)
	return ok && s == status
}
