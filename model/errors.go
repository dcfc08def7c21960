package model

import (
	"github.com/pkg/errors"
)

// Error taxonomy shared by every service. Services wrap these sentinels with
// context via pkg/errors; callers classify with errors.Is and the server layer
// maps each class to an HTTP status.
var (
	// ErrValidation marks malformed input, e.g. empty or over-long content.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a referenced post/user/book that doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an ownership violation, e.g. deleting another
	// user's post.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized marks a missing or invalid caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict marks a duplicate of something unique, e.g. adding an
	// existing friend or reusing an email.
	ErrConflict = errors.New("conflict")
	// ErrInternal marks a storage or downstream failure.
	ErrInternal = errors.New("internal error")
)
