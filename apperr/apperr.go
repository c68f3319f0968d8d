// Package apperr defines the request-level error taxonomy shared by the
// content services and the HTTP layer. Every failure a caller can see is one
// of these kinds; anything else is surfaced as Internal without detail.
package apperr

import "errors"

type Kind string

const (
	Unauthenticated    Kind = "UNAUTHENTICATED"
	Unauthorized       Kind = "UNAUTHORIZED"
	NotFound           Kind = "NOT_FOUND"
	InvalidArgument    Kind = "INVALID_ARGUMENT"
	DuplicateEmail     Kind = "DUPLICATE_EMAIL"
	DuplicateUsername  Kind = "DUPLICATE_USERNAME"
	InvalidCredentials Kind = "INVALID_CREDENTIALS"
	InvalidToken       Kind = "INVALID_TOKEN"
	Internal           Kind = "INTERNAL_SERVER_ERROR"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause for logging; the cause is never part of the
// user-visible message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// KindOf classifies any error; unknown errors count as Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
