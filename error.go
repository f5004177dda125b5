package redismodels

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the errors raised by this module itself. Store errors are
// passed through as returned by go-redis and carry no code.
type ErrorCode int

const (
	Unknown ErrorCode = iota
	// PreconditionViolation flags a caller logic error, e.g. beginning a transaction twice.
	PreconditionViolation
	// TransactionDiscarded is reported by results of commands whose batch was discarded.
	TransactionDiscarded
	// OperationCanceled is reported by results that were canceled before they settled.
	OperationCanceled
)

func (c ErrorCode) String() string {
	switch c {
	case PreconditionViolation:
		return "precondition violation"
	case TransactionDiscarded:
		return "transaction discarded"
	case OperationCanceled:
		return "operation canceled"
	}
	return "unknown"
}

// Error is the custom error type of this module.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	if e.UserData != nil {
		return fmt.Sprintf("%s: %v, user data: %v", e.Code, e.Err, e.UserData)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e Error) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is, or wraps, an Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
