// Package errs defines the application error type shared by services and
// commands.
//
// Errors are classified by Kind so callers can tell a rejected draft apart
// from a failed report write without matching on message text.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind defines the kind or class of an error.
type Kind uint8

const (
	Other    Kind = iota // Unclassified error
	Internal             // Internal error
	Invalid              // Invalid input, validation error etc
	NotFound             // Entity does not exist
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "unclassified error"
	case Internal:
		return "internal error"
	case Invalid:
		return "invalid input"
	case NotFound:
		return "entity not found"
	default:
		return "unknown error kind"
	}
}

// Error is the standard application error.
type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field messages for Invalid errors.
	Fields map[string]string
	// Wrapped underlying error.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(e.Kind.String())
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %s", k, e.Fields[k])
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.Err }

// E builds an *Error from its arguments: a Kind, a message string, a wrapped
// error and/or a map of field messages, in any order.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case string:
			e.Message = arg
		case map[string]string:
			e.Fields = arg
		case error:
			e.Err = arg
		}
	}
	return e
}

// KindOf reports the Kind of err, or Other if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// FieldsOf returns the field messages carried by err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// Is reports whether err is an application error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
