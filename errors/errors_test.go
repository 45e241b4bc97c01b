package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseRun,
				Kind:   KindBoundary,
				Pos:    17,
				Detail: "data pointer -1 outside tape of length 2000",
			},
			contains: []string{"[run]", "boundary_violation", "at 17", "data pointer -1"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindUnbalancedLoop,
				Pos:   -1,
			},
			contains: []string{"[resolve]", "unbalanced_loop"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRun,
				Kind:   KindIO,
				Pos:    3,
				Detail: "read input",
				Cause:  errors.New("pipe closed"),
			},
			contains: []string{"[run]", "io", "at 3", "read input", "caused by", "pipe closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ReadFailed(5, cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(error(err)), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := UnbalancedLoop(PhaseResolve, 12, "unmatched ']'")

	// Same phase and kind, offsets ignored
	if !err.Is(&Error{Phase: PhaseResolve, Kind: KindUnbalancedLoop}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseRun, Kind: KindUnbalancedLoop}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindBoundary}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseResolve, Kind: KindUnbalancedLoop}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		pos      int
		contains string
	}{
		{
			name:     "unbalanced loop",
			err:      UnbalancedLoop(PhaseResolve, 4, "unmatched '['"),
			phase:    PhaseResolve,
			kind:     KindUnbalancedLoop,
			pos:      4,
			contains: "unmatched '['",
		},
		{
			name:     "boundary violation",
			err:      BoundaryViolation(9, 2000, 2000),
			phase:    PhaseRun,
			kind:     KindBoundary,
			pos:      9,
			contains: "data pointer 2000 outside tape of length 2000",
		},
		{
			name:     "step limit",
			err:      StepLimitExceeded(1 << 20),
			phase:    PhaseRun,
			kind:     KindStepLimit,
			pos:      -1,
			contains: "1048576",
		},
		{
			name:     "invalid input",
			err:      InvalidInput(PhaseConfig, "tape length must be positive"),
			phase:    PhaseConfig,
			kind:     KindInvalidInput,
			pos:      -1,
			contains: "tape length must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", tt.err.Pos, tt.pos)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(PhaseLoad, KindIO, cause, "read program file")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "read program file") {
		t.Errorf("message %q missing detail", err.Error())
	}
}
