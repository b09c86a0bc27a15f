package repository

import (
	"errors"
	"fmt"
	"strings"

	"musicgraph/model"
)

// Domain error kinds. Match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidRange = errors.New("invalid range")
)

// Error is a domain error with a short caller-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(c model.Collection) error {
	return &Error{Kind: ErrNotFound, Msg: capitalize(c.Singular()) + " not found"}
}

func keyExists(c model.Collection) error {
	return &Error{Kind: ErrConflict, Msg: capitalize(c.Singular()) + " key already exists"}
}

func conflictf(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

func invalidRangef(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidRange, Msg: fmt.Sprintf(format, args...)}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
