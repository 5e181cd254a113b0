package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidInput           ErrorKind = "invalid_input"
	KindUnresolvedJurisdiction ErrorKind = "unresolved_jurisdiction"
	KindTransportFailure       ErrorKind = "transport_failure"
	KindRemoteServiceError     ErrorKind = "remote_service_error"
	KindMalformedResponse      ErrorKind = "malformed_response"
)

// CalculationError is returned by every stage of a paycheck calculation.
type CalculationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CalculationError) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// Is matches any CalculationError of the same kind, so the sentinels below
// work with errors.Is.
func (e *CalculationError) Is(target error) bool {
	t, ok := target.(*CalculationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidInput           = &CalculationError{Kind: KindInvalidInput}
	ErrUnresolvedJurisdiction = &CalculationError{Kind: KindUnresolvedJurisdiction}
	ErrTransportFailure       = &CalculationError{Kind: KindTransportFailure}
	ErrRemoteServiceError     = &CalculationError{Kind: KindRemoteServiceError}
	ErrMalformedResponse      = &CalculationError{Kind: KindMalformedResponse}
)

func NewError(kind ErrorKind, message string, cause error) *CalculationError {
	return &CalculationError{Kind: kind, Message: message, Err: cause}
}

func InvalidInput(format string, args ...any) *CalculationError {
	return &CalculationError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first CalculationError in err's chain, or
// an empty kind when there is none.
func KindOf(err error) ErrorKind {
	var calcErr *CalculationError
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return ""
}
