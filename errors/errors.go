package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad    Phase = "load"    // program loading
	PhaseResolve Phase = "resolve" // bracket/loop resolution
	PhaseRun     Phase = "run"     // instruction execution
	PhaseConfig  Phase = "config"  // interpreter configuration
)

// Kind categorizes the error
type Kind string

const (
	KindUnbalancedLoop Kind = "unbalanced_loop"
	KindBoundary       Kind = "boundary_violation"
	KindStepLimit      Kind = "step_limit_exceeded"
	KindInvalidInput   Kind = "invalid_input"
	KindIO             Kind = "io"
)

// Error is the structured error type used throughout the interpreter
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Pos    int // instruction offset the fault was raised at, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos >= 0 {
		fmt.Fprintf(&b, " at %d", e.Pos)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the interpreter's fault kinds

// UnbalancedLoop creates a malformed-bracket error. pos is the offset of the
// offending bracket in the program source.
func UnbalancedLoop(phase Phase, pos int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnbalancedLoop,
		Pos:    pos,
		Detail: detail,
	}
}

// BoundaryViolation creates a tape-boundary error. pos is the instruction
// offset, ptr the pointer position the move would have produced.
func BoundaryViolation(pos, ptr, tapeLen int) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindBoundary,
		Pos:    pos,
		Detail: fmt.Sprintf("data pointer %d outside tape of length %d", ptr, tapeLen),
	}
}

// StepLimitExceeded creates a step-budget error
func StepLimitExceeded(limit uint64) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindStepLimit,
		Pos:    -1,
		Detail: fmt.Sprintf("step limit of %d reached", limit),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Pos:    -1,
		Detail: detail,
	}
}

// ReadFailed wraps a non-EOF failure of the ',' input source
func ReadFailed(pos int, cause error) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindIO,
		Pos:    pos,
		Detail: "read input",
		Cause:  cause,
	}
}

// WriteFailed wraps a failure of the configured output writer
func WriteFailed(pos int, cause error) *Error {
	return &Error{
		Phase:  PhaseRun,
		Kind:   KindIO,
		Pos:    pos,
		Detail: "write output",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Pos:    -1,
		Detail: detail,
		Cause:  cause,
	}
}
