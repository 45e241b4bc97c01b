// Package errors provides structured error types for the brainfuck interpreter.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the instruction offset the fault was
// raised at and a cause chain.
//
// Use the convenience constructors for the interpreter's fault kinds:
//
//	err := errors.UnbalancedLoop(errors.PhaseResolve, 12, "unmatched ']'")
//	err := errors.BoundaryViolation(17, -1, 2000)
//	err := errors.StepLimitExceeded(1 << 20)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a fault category
// without caring about offsets:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseRun, Kind: errors.KindStepLimit})
package errors
