package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateEmail rejects registration with an already-registered
	// email. User-visible; the form stays editable.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two causes are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated means an operation requiring a session was
	// called without one. The UI never exposes such operations while
	// logged out, so reaching this is a caller bug.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownSortColumn rejects a sort key the data table does not have.
	ErrUnknownSortColumn = errors.New("unknown sort column")
)

// ValidationError reports malformed form input, one message per field.
// It is produced before any store access.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
