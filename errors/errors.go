package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes.
type ErrorClass int

const (
	// ErrorMalformed represents structural graph encodings the decoder cannot
	// use; the affected construct is omitted and the run continues.
	ErrorMalformed ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration.
	ErrorInvalid
	// ErrorFatal represents upstream collaborator failures that stop the run.
	ErrorFatal
)

// String returns the string representation of ErrorClass.
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorMalformed:
		return "malformed"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions.
var (
	// Graph structure errors
	ErrCyclicList          = errors.New("cyclic rdf list encoding")
	ErrListBudgetExceeded  = errors.New("rdf list exceeds traversal budget")
	ErrMalformedExpression = errors.New("unrecognizable class expression")
	ErrInvalidTerm         = errors.New("invalid term encoding")

	// Upstream collaborator errors
	ErrStoreUnavailable = errors.New("graph store unavailable")
	ErrReasonerFailed   = errors.New("reasoner failed")

	// Configuration and caller-input errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
	ErrNilStore      = errors.New("nil graph store")
)

// ClassifiedError wraps an error with its classification.
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsMalformed checks if an error reports a malformed graph structure.
func IsMalformed(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorMalformed
	}

	return errors.Is(err, ErrCyclicList) ||
		errors.Is(err, ErrListBudgetExceeded) ||
		errors.Is(err, ErrMalformedExpression) ||
		errors.Is(err, ErrInvalidTerm)
}

// IsInvalid checks if an error is due to invalid input or configuration.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrNilStore)
}

// IsFatal checks if an error is fatal and should stop the run.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, ErrReasonerFailed)
}

// Classify returns the error class for an error. Unknown errors default to
// malformed, the least severe class: the construct is dropped but the run
// survives.
func Classify(err error) ErrorClass {
	switch {
	case IsFatal(err):
		return ErrorFatal
	case IsInvalid(err):
		return ErrorInvalid
	default:
		return ErrorMalformed
	}
}

// newClassified creates a new classified error.
// Internal helper - use WrapMalformed(), WrapInvalid(), or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapMalformed wraps an error as a malformed-structure condition with context.
func WrapMalformed(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorMalformed, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid input with context.
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		err = ErrInvalidConfig
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context.
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}
