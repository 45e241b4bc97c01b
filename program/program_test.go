package program

import (
	stderrors "errors"
	"testing"

	"github.com/slightlynybbled/brainfuck/errors"
)

func TestLoad_JumpTable(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pairs  map[int]int // open offset -> close offset
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"no_brackets",
			"+-><.,",
			nil,
		},
		{
			"single_pair",
			"[]",
			map[int]int{0: 1},
		},
		{
			"pair_with_body",
			"[->+<]",
			map[int]int{0: 5},
		},
		{
			"nested",
			"[[[]]]",
			map[int]int{0: 5, 1: 4, 2: 3},
		},
		{
			"sequential",
			"[-][-]",
			map[int]int{0: 2, 3: 5},
		},
		{
			"comments_between_brackets",
			"[ loop body! ]",
			map[int]int{0: 13},
		},
		{
			"hello_world_outer_loop",
			"++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.",
			map[int]int{10: 41},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Load(tt.source)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", tt.source, err)
			}

			for open, close := range tt.pairs {
				if got := prog.Jump(open); got != close {
					t.Errorf("Jump(%d) = %d, want %d", open, got, close)
				}
				if got := prog.Jump(close); got != open {
					t.Errorf("Jump(%d) = %d, want %d", close, got, open)
				}
			}

			// The table is an involution over every bracket offset and -1
			// everywhere else.
			for i := 0; i < prog.Len(); i++ {
				j := prog.Jump(i)
				switch prog.At(i) {
				case OpOpen, OpClose:
					if j < 0 {
						t.Errorf("bracket at %d has no partner", i)
					} else if prog.Jump(j) != i {
						t.Errorf("Jump(Jump(%d)) = %d, want %d", i, prog.Jump(j), i)
					}
				default:
					if j != -1 {
						t.Errorf("Jump(%d) = %d for non-bracket, want -1", i, j)
					}
				}
			}
		})
	}
}

func TestLoad_Unbalanced(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pos    int
	}{
		{"lone_open", "[", 0},
		{"lone_close", "]", 0},
		{"close_before_open", "][", 0},
		{"missing_close", "++[>+<", 2},
		{"missing_open", "++>+<]", 5},
		{"extra_close_nested", "[[]]]", 4},
		{"extra_open_nested", "[[[]]", 0},
	}

	target := &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnbalancedLoop}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Load(tt.source)
			if err == nil {
				t.Fatalf("Load(%q) succeeded, want unbalanced_loop", tt.source)
			}
			if prog != nil {
				t.Error("Load returned a program alongside an error")
			}
			if !stderrors.Is(err, target) {
				t.Errorf("error = %v, want unbalanced_loop in resolve phase", err)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", e.Pos, tt.pos)
			}
		})
	}
}

func TestProgram_Accessors(t *testing.T) {
	prog, err := Load("+- comment [].")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := prog.Len(); got != 14 {
		t.Errorf("Len() = %d, want 14", got)
	}
	if got := prog.Instructions(); got != 5 {
		t.Errorf("Instructions() = %d, want 5", got)
	}
	if got := prog.Source(); got != "+- comment []." {
		t.Errorf("Source() = %q", got)
	}
	if got := prog.At(0); got != OpInc {
		t.Errorf("At(0) = %q, want '+'", got)
	}
}
