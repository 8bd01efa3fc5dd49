package engine

import (
	"errors"

	"solarwin/internal/tweak"

	"github.com/charmbracelet/log"
)

// Executor runs a single operation on behalf of the engine.
type Executor interface {
	Execute(op tweak.Operation) error
}

// DirectExecutor runs operations against the live system.
type DirectExecutor struct{}

// Execute runs op and normalizes whatever comes back, including a panic, into
// an *tweak.OperationError.
func (DirectExecutor) Execute(op tweak.Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tweak.Failf(op.Name(), "panic: %v", r)
		}
	}()
	return normalize(op, op.Execute())
}

// DryRunExecutor logs operations without running them. Every operation succeeds.
type DryRunExecutor struct {
	Logger *log.Logger
}

func (d DryRunExecutor) Execute(op tweak.Operation) error {
	if d.Logger != nil {
		d.Logger.Info("dry run", "op", op.Name())
	}
	return nil
}

func normalize(op tweak.Operation, err error) error {
	if err == nil {
		return nil
	}
	var opErr *tweak.OperationError
	if errors.As(err, &opErr) {
		return opErr
	}
	return &tweak.OperationError{Op: op.Name(), Message: err.Error(), Err: err}
}

// safeExecute guards against executors that panic themselves.
func safeExecute(x Executor, op tweak.Operation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tweak.Failf(op.Name(), "panic: %v", r)
		}
	}()
	return normalize(op, x.Execute(op))
}
