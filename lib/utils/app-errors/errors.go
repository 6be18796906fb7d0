package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindNotFound
	KindConflict
	KindTransient
)

var kindName = map[Kind]string{
	KindUnknown:       "unknown",
	KindValidation:    "validation",
	KindAuthorization: "authorization",
	KindNotFound:      "not_found",
	KindConflict:      "conflict",
	KindTransient:     "transient",
}

func (k Kind) String() string {
	return kindName[k]
}

// Error carries a kind and a message safe to show to the caller.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

func (e *Error) Cause() error { return e.cause }

func (e *Error) Unwrap() error { return e.cause }

func NewValidation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NewAuthorization(msg string) error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

func NewNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func NewConflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Transient marks a failed store/network call. nil stays nil.
func Transient(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindTransient, Msg: msg, cause: err}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the caller-facing message, without the wrapped cause.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	return err.Error()
}
