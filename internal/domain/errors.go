package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInvalidArgument     ErrorCode = "INVALID_ARGUMENT"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeInsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	CodeDomainValidation    ErrorCode = "DOMAIN_VALIDATION"
	CodeDomainConflict      ErrorCode = "DOMAIN_CONFLICT"
	CodeSystemConfiguration ErrorCode = "SYSTEM_CONFIGURATION"
)

// Error is the engine's failure type: a stable machine-readable code plus a
// human-readable message. Errors with the same code match via errors.Is.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

func InsufficientBalance(format string, args ...any) *Error {
	return &Error{Code: CodeInsufficientBalance, Message: fmt.Sprintf(format, args...)}
}

func DomainValidation(format string, args ...any) *Error {
	return &Error{Code: CodeDomainValidation, Message: fmt.Sprintf(format, args...)}
}

func DomainConflict(format string, args ...any) *Error {
	return &Error{Code: CodeDomainConflict, Message: fmt.Sprintf(format, args...)}
}

func SystemConfiguration(format string, args ...any) *Error {
	return &Error{Code: CodeSystemConfiguration, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the machine code from any error produced by the engine.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
