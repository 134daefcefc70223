package service

import "errors"

// Shared service errors. Handlers map these to HTTP status codes with
// errors.Is. A caller who is not a member of a workspace gets ErrNotFound
// rather than ErrForbidden, so non-members cannot tell a workspace they
// lack access to apart from one that does not exist.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("already exists")
	ErrLastOwner  = errors.New("cannot remove the last owner")
	ErrValidation = errors.New("invalid input")
)
