package program

import (
	"github.com/slightlynybbled/brainfuck/errors"
)

// The eight characters that carry meaning. Everything else in the source is
// a comment and executes as a no-op.
const (
	OpRight = '>'
	OpLeft  = '<'
	OpInc   = '+'
	OpDec   = '-'
	OpPut   = '.'
	OpGet   = ','
	OpOpen  = '['
	OpClose = ']'
)

// IsCommand reports whether c is one of the eight instruction characters.
func IsCommand(c byte) bool {
	switch c {
	case OpRight, OpLeft, OpInc, OpDec, OpPut, OpGet, OpOpen, OpClose:
		return true
	}
	return false
}

// Program is an immutable, loaded brainfuck source with its loop structure
// resolved. The zero value is not usable; construct with Load.
type Program struct {
	src   []byte
	jumps []int // partner offset for '[' and ']', -1 for every other offset
	cmds  int
}

// Load validates source and builds its jump table in one linear pass.
// It fails with an unbalanced_loop error if any bracket lacks a partner;
// non-bracket characters are ignored by the resolver.
func Load(source string) (*Program, error) {
	src := []byte(source)
	jumps := make([]int, len(src))
	for i := range jumps {
		jumps[i] = -1
	}

	var pending []int // offsets of unmatched '[' seen so far
	cmds := 0

	for i, c := range src {
		if IsCommand(c) {
			cmds++
		}
		switch c {
		case OpOpen:
			pending = append(pending, i)
		case OpClose:
			if len(pending) == 0 {
				return nil, errors.UnbalancedLoop(errors.PhaseResolve, i, "unmatched ']'")
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}

	if len(pending) > 0 {
		return nil, errors.UnbalancedLoop(errors.PhaseResolve, pending[0], "unmatched '['")
	}

	return &Program{src: src, jumps: jumps, cmds: cmds}, nil
}

// Len returns the length of the source in bytes.
func (p *Program) Len() int {
	return len(p.src)
}

// At returns the source byte at offset i.
func (p *Program) At(i int) byte {
	return p.src[i]
}

// Jump returns the offset of the bracket matching the one at offset i,
// or -1 if i does not hold a bracket.
func (p *Program) Jump(i int) int {
	return p.jumps[i]
}

// Instructions returns the number of meaningful instruction characters in
// the source, comments excluded.
func (p *Program) Instructions() int {
	return p.cmds
}

// Source returns the original source text.
func (p *Program) Source() string {
	return string(p.src)
}
