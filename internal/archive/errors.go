package archive

import "errors"

// Kind classifies a domain failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
)

// Sentinels for errors.Is checks against *Error values.
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "already exists"}
	ErrValidation = &Error{Kind: KindValidation, Message: "invalid request"}
)

// Error is an expected failure of an archive operation. Message is meant
// for the person at the console and is returned unchanged in responses.
// Details, when set, replaces Message as the response payload.
type Error struct {
	Kind    Kind
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Payload returns what a failure response should carry for e.
func (e *Error) Payload() any {
	if e.Details != nil {
		return e.Details
	}
	return e.Message
}

func notFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func invalid(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// AsError unwraps err to an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
