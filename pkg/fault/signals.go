package fault

import (
	"strconv"
)

// unclassified provides the Classified capability with both values absent.
// The control-signal variants embed it: they carry process-control
// information, not catalog-classified failure diagnostics.
type unclassified struct{}

func (unclassified) ErrorClass() string { return "" }
func (unclassified) SQLState() string   { return "" }

// ExecutionError wraps a failure raised by user-supplied callback code
// running in the coordinator process. It always has a cause and never an
// error class.
type ExecutionError struct {
	unclassified
	cause error
}

var _ Classified = (*ExecutionError)(nil)

// NewExecutionError wraps cause into an ExecutionError.
func NewExecutionError(cause error) *ExecutionError {
	return &ExecutionError{cause: cause}
}

func (e *ExecutionError) Error() string {
	if e.cause != nil {
		return "Execution error: " + e.cause.Error()
	}
	return "Execution error"
}

// Unwrap returns the wrapped user-code failure.
func (e *ExecutionError) Unwrap() error { return e.cause }

// UserAppExitError propagates a child application's intended exit code up
// through the launcher. It is a control signal shaped like an error, not a
// failure diagnostic.
type UserAppExitError struct {
	unclassified

	// Code is the exit code the user application finished with.
	Code int
}

var _ Classified = (*UserAppExitError)(nil)

// NewUserAppExitError creates an exit signal for the given exit code.
func NewUserAppExitError(code int) *UserAppExitError {
	return &UserAppExitError{Code: code}
}

func (e *UserAppExitError) Error() string {
	return "User application exited with " + strconv.Itoa(e.Code)
}

// ExitCode returns the exit code the launcher should propagate.
func (e *UserAppExitError) ExitCode() int { return e.Code }

// DeadWorkerError signals that a remote worker is unreachable or has
// terminated. It carries only a plain message identifying the worker.
type DeadWorkerError struct {
	unclassified
	msg string
}

var _ Classified = (*DeadWorkerError)(nil)

// NewDeadWorkerError creates a dead-worker signal with the given message.
func NewDeadWorkerError(msg string) *DeadWorkerError {
	return &DeadWorkerError{msg: msg}
}

func (e *DeadWorkerError) Error() string { return e.msg }

// UpgradeError warns that an operation may return different results after an
// engine version upgrade. It is informational rather than classifiable, so
// unlike the other variants it deliberately does not implement Classified.
type UpgradeError struct {
	// Version is the engine version whose behavior change triggered the
	// warning.
	Version string

	msg   string
	cause error
}

// NewUpgradeError creates an upgrade warning for the given engine version.
func NewUpgradeError(version, msg string, cause error) *UpgradeError {
	return &UpgradeError{Version: version, msg: msg, cause: cause}
}

func (e *UpgradeError) Error() string {
	return "you may get a different result due to the upgrading to CinderDB >= " +
		e.Version + ": " + e.msg
}

// Unwrap returns the underlying failure, or nil.
func (e *UpgradeError) Unwrap() error { return e.cause }
