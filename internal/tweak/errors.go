package tweak

import "fmt"

// OperationError is the only error shape that leaves an Operation. Op names the
// operation, Message is the human readable reason and Err keeps the cause.
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Fail wraps a cause in an OperationError. A nil cause yields nil.
func Fail(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Op: op, Message: err.Error(), Err: err}
}

// Failf builds an OperationError from a format string.
func Failf(op, format string, args ...interface{}) error {
	return &OperationError{Op: op, Message: fmt.Sprintf(format, args...)}
}
