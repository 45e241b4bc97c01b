package brainfuck

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/slightlynybbled/brainfuck/bfi"
	"github.com/slightlynybbled/brainfuck/engine"
	"github.com/slightlynybbled/brainfuck/errors"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name   string
		source string
		opts   []bfi.Option
		want   string
	}{
		{
			"hello_world",
			"++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.>+.+++++++..+++.>++.<<+++++++++++++++.>.+++.------.--------.>+.>.",
			nil,
			"Hello World!\n",
		},
		{
			"letter_a",
			"++++++++[>++++++++<-]>+.",
			nil,
			"A",
		},
		{
			"echo_with_exhaustion",
			",.,.,.",
			[]bfi.Option{bfi.WithInput(strings.NewReader("ab"))},
			"ab\x00",
		},
		{
			"small_tape",
			"++++++++[>++++++++<-]>+.",
			[]bfi.Option{bfi.WithTapeLength(2)},
			"A",
		},
		{
			"word_variant",
			"++++++++[>++++++++<-]>+.",
			[]bfi.Option{bfi.WithVariant(engine.VariantWord)},
			"A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Execute(tt.source, tt.opts...)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestExecute_Faults(t *testing.T) {
	tests := []struct {
		name   string
		source string
		opts   []bfi.Option
		target *errors.Error
	}{
		{
			"unmatched_open",
			"[",
			nil,
			&errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnbalancedLoop},
		},
		{
			"runaway_loop",
			"+[]",
			[]bfi.Option{bfi.WithStepLimit(10_000)},
			&errors.Error{Phase: errors.PhaseRun, Kind: errors.KindStepLimit},
		},
		{
			"strict_boundary",
			"<",
			[]bfi.Option{bfi.WithVariant(engine.VariantStrict)},
			&errors.Error{Phase: errors.PhaseRun, Kind: errors.KindBoundary},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Execute(tt.source, tt.opts...)
			if err == nil {
				t.Fatalf("Execute(%q) = %q, want error", tt.source, out)
			}
			if !stderrors.Is(err, tt.target) {
				t.Errorf("error = %v, want %s/%s", err, tt.target.Phase, tt.target.Kind)
			}
		})
	}
}
