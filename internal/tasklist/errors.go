package tasklist

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/todoscreen/internal/model"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNoOp       Kind = "noop"
	KindNotFound   Kind = "not_found"
)

var (
	ErrValidation = errors.New("tasklist: validation failed")
	ErrNoOp       = errors.New("tasklist: nothing to do")
	ErrNotFound   = errors.New("tasklist: item not found")
)

// Error is returned by controller commands. Message is safe to show to the user.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNoOp:
		return e.Kind == KindNoOp
	case ErrNotFound:
		return e.Kind == KindNotFound
	default:
		return false
	}
}

// KindOf extracts the error kind from err, if it came from the controller.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return "", false
}

// UserMessage returns the text the shell should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}

// invalidItemError maps a failed model.Item check onto a validation error that
// still unwraps to the model sentinel.
func invalidItemError(op string, err error) error {
	msg := msgInvalidItem
	if errors.Is(err, model.ErrEmptyText) {
		msg = msgEmptyInput
	}
	return &Error{Kind: KindValidation, Op: op, Message: msg, Err: err}
}

func noOpError(op, msg string) error {
	return &Error{Kind: KindNoOp, Op: op, Message: msg}
}

func notFoundError(op, msg string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: msg}
}
