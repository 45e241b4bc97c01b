package bfi

import (
	"github.com/slightlynybbled/brainfuck/engine"
	"github.com/slightlynybbled/brainfuck/program"
)

// Module is a loaded, validated program bound to its interpreter's
// configuration.
type Module struct {
	interp *Interpreter
	prog   *program.Program
}

// Evaluate runs the program on a fresh machine and returns the accumulated
// output. Each call starts from the initial state: tape zeroed, pointers at
// 0, output empty.
func (m *Module) Evaluate() (string, error) {
	machine, err := engine.New(m.prog, m.interp.cfg)
	if err != nil {
		return "", err
	}
	return machine.Run()
}

// Source returns the program's source text.
func (m *Module) Source() string {
	return m.prog.Source()
}

// Instructions returns the number of meaningful instruction characters in
// the program.
func (m *Module) Instructions() int {
	return m.prog.Instructions()
}

// Program exposes the underlying loaded program for callers that drive the
// engine directly.
func (m *Module) Program() *program.Program {
	return m.prog
}
