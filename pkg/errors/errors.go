// pkg/errors/errors.go

// Package errors defines the failure taxonomy shared by the dashboard packages.
package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind classifies a failure by the stage that produced it
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig covers missing or malformed credentials
	KindConfig
	// KindConnection covers handshake, auth and network failures on connect
	KindConnection
	// KindQuery covers malformed SQL, constraint violations and result iteration failures
	KindQuery
	// KindDataShape covers rows that do not match the expected column list
	KindDataShape
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "ConfigError"
	case KindConnection:
		return "ConnectionError"
	case KindQuery:
		return "QueryError"
	case KindDataShape:
		return "DataShapeError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is a classified failure carrying the stack where it was raised
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when the error was created
func (e *Error) StackTrace() []byte {
	return e.Stack
}

// New creates a classified error. The stack is taken from err when it already
// carries one, otherwise it starts at the caller of New.
func New(kind Kind, message string, err error) *Error {
	return newAt(1, kind, message, err)
}

func Config(message string, err error) *Error {
	return newAt(1, KindConfig, message, err)
}

func Connection(message string, err error) *Error {
	return newAt(1, KindConnection, message, err)
}

func Query(message string, err error) *Error {
	return newAt(1, KindQuery, message, err)
}

func DataShape(message string, err error) *Error {
	return newAt(1, KindDataShape, message, err)
}

// newAt skips skip frames above itself when recording the stack
func newAt(skip int, kind Kind, message string, err error) *Error {
	var stack []byte
	var stackErr *goerrors.Error
	switch {
	case err != nil && stderrors.As(err, &stackErr):
		stack = stackErr.Stack()
	case err != nil:
		stack = goerrors.Wrap(err, skip+1).Stack()
	default:
		stack = goerrors.Wrap(stderrors.New(message), skip+1).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) Kind {
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// Is reports whether err's chain contains a classified error of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
