package bfi

import (
	"io"

	"github.com/slightlynybbled/brainfuck/engine"
	"github.com/slightlynybbled/brainfuck/program"
)

// Option configures an Interpreter.
type Option func(*engine.Config)

// WithTapeLength sets the initial tape size. The default is
// engine.DefaultTapeLength (2000 cells).
func WithTapeLength(n int) Option {
	return func(cfg *engine.Config) {
		cfg.TapeLength = n
	}
}

// WithVariant selects the language variant.
func WithVariant(v engine.Variant) Option {
	return func(cfg *engine.Config) {
		cfg.Variant = v
	}
}

// WithStepLimit bounds the number of executed steps per Evaluate.
// 0 means unlimited, the default.
func WithStepLimit(n uint64) Option {
	return func(cfg *engine.Config) {
		cfg.StepLimit = n
	}
}

// WithInput supplies the byte source consumed by ','.
func WithInput(r io.Reader) Option {
	return func(cfg *engine.Config) {
		cfg.Input = r
	}
}

// WithOutput streams emitted characters to w as they are produced, in
// addition to the string Evaluate returns.
func WithOutput(w io.Writer) Option {
	return func(cfg *engine.Config) {
		cfg.Output = w
	}
}

// Interpreter holds configuration and loads programs. It carries no
// per-evaluation state and is safe for concurrent Load calls.
type Interpreter struct {
	cfg engine.Config
}

// New creates an interpreter with the given options applied over defaults.
func New(opts ...Option) *Interpreter {
	interp := &Interpreter{}
	for _, opt := range opts {
		opt(&interp.cfg)
	}
	return interp
}

// Load validates source, resolves its loop structure and returns a Module
// ready to evaluate. Malformed bracket nesting fails here with an
// unbalanced_loop error; no instruction executes.
func (in *Interpreter) Load(source string) (*Module, error) {
	prog, err := program.Load(source)
	if err != nil {
		return nil, err
	}

	// Reject bad configuration at load time too, so Evaluate cannot fail
	// for reasons unrelated to the program.
	if _, err := engine.New(prog, in.cfg); err != nil {
		return nil, err
	}

	return &Module{interp: in, prog: prog}, nil
}
