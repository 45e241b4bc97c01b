package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/slightlynybbled/brainfuck/errors"
	"github.com/slightlynybbled/brainfuck/program"
)

// DefaultTapeLength is the tape size used when Config.TapeLength is zero.
// It matches the original interpreter's default stack length.
const DefaultTapeLength = 2000

// Config holds configuration for machine creation.
type Config struct {
	// Input is the byte source consumed by ','. A nil Input behaves as a
	// permanently exhausted source.
	Input io.Reader

	// Output, when non-nil, receives emitted characters as they are
	// produced. Output is always accumulated internally and returned from
	// Run regardless.
	Output io.Writer

	// TapeLength is the initial number of cells. 0 means DefaultTapeLength;
	// negative values are rejected.
	TapeLength int

	// Variant selects the cell width, boundary, tape sizing and input
	// exhaustion policies.
	Variant Variant

	// StepLimit bounds the number of executed steps. 0 means unlimited.
	StepLimit uint64
}

func (c Config) withDefaults() (Config, error) {
	if c.TapeLength == 0 {
		c.TapeLength = DefaultTapeLength
	}
	if c.TapeLength < 1 {
		return c, errors.InvalidInput(errors.PhaseConfig, "tape length must be positive")
	}
	if !c.Variant.Valid() {
		return c, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown variant ordinal %d", int(c.Variant)))
	}
	return c, nil
}

// Machine executes one loaded program over a linear tape. A Machine is
// single-use per Run; Reset restores the zeroed initial state for explicit
// reuse. Machines are not safe for concurrent use, but independent Machines
// share nothing and may run in parallel.
type Machine struct {
	in    io.ByteReader
	prog  *program.Program
	tape  []uint64
	out   bytes.Buffer
	cfg   Config
	pol   policy
	ptr   int
	ip    int
	steps uint64
}

// New creates a machine for prog in its initial state: tape zeroed, both
// pointers at 0, output empty.
func New(prog *program.Program, cfg Config) (*Machine, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	m := &Machine{
		prog: prog,
		cfg:  cfg,
		pol:  cfg.Variant.policy(),
	}
	if cfg.Input != nil {
		if br, ok := cfg.Input.(io.ByteReader); ok {
			m.in = br
		} else {
			m.in = bufio.NewReader(cfg.Input)
		}
	}
	m.Reset()
	return m, nil
}

// Reset restores the initial state. The input source is not rewound; bytes
// already consumed stay consumed.
func (m *Machine) Reset() {
	m.tape = make([]uint64, m.cfg.TapeLength)
	m.ptr = 0
	m.ip = 0
	m.steps = 0
	m.out.Reset()
}

// Run executes the program to completion and returns the accumulated
// output. On a fault the output produced so far is returned alongside the
// error. Run does not reset state; call Reset before reusing the machine.
func (m *Machine) Run() (string, error) {
	programLen := m.prog.Len()

	for m.ip < programLen {
		if m.cfg.StepLimit > 0 && m.steps >= m.cfg.StepLimit {
			return m.out.String(), errors.StepLimitExceeded(m.cfg.StepLimit)
		}

		c := m.prog.At(m.ip)
		debugf("executing %q at %d (ptr=%d cell=%d)", c, m.ip, m.ptr, m.tape[m.ptr])

		var err error
		switch c {
		case program.OpRight:
			err = m.move(1)
		case program.OpLeft:
			err = m.move(-1)
		case program.OpInc:
			m.tape[m.ptr] = (m.tape[m.ptr] + 1) & m.pol.cellMask
		case program.OpDec:
			m.tape[m.ptr] = (m.tape[m.ptr] - 1) & m.pol.cellMask
		case program.OpPut:
			err = m.put()
		case program.OpGet:
			err = m.get()
		case program.OpOpen:
			if m.tape[m.ptr] == 0 {
				m.ip = m.prog.Jump(m.ip)
			}
		case program.OpClose:
			if m.tape[m.ptr] != 0 {
				m.ip = m.prog.Jump(m.ip)
			}
		}
		if err != nil {
			return m.out.String(), err
		}

		m.ip++
		m.steps++
	}

	Logger().Debug("evaluation complete",
		zap.Uint64("steps", m.steps),
		zap.Int("output_len", m.out.Len()))

	return m.out.String(), nil
}

func (m *Machine) move(delta int) error {
	p := m.ptr + delta

	switch m.pol.boundary {
	case BoundaryWrap:
		n := len(m.tape)
		m.ptr = ((p % n) + n) % n
	case BoundaryFault:
		if p < 0 || p >= len(m.tape) {
			return errors.BoundaryViolation(m.ip, p, len(m.tape))
		}
		m.ptr = p
	case BoundaryGrow:
		if p < 0 {
			return errors.BoundaryViolation(m.ip, p, len(m.tape))
		}
		if p >= len(m.tape) {
			m.tape = append(m.tape, 0)
		}
		m.ptr = p
	}
	return nil
}

func (m *Machine) put() error {
	v := m.tape[m.ptr]

	var buf [utf8.UTFMax]byte
	var emitted []byte
	if m.pol.cellMask == mask8 {
		// 8-bit cells emit the raw byte.
		buf[0] = byte(v)
		emitted = buf[:1]
	} else {
		// Wider cells emit the value as a UTF-8 encoded rune. Values
		// outside the valid rune range encode as the replacement
		// character.
		n := utf8.EncodeRune(buf[:], rune(v))
		emitted = buf[:n]
	}

	m.out.Write(emitted)
	if m.cfg.Output != nil {
		if _, err := m.cfg.Output.Write(emitted); err != nil {
			return errors.WriteFailed(m.ip, err)
		}
	}
	return nil
}

func (m *Machine) get() error {
	if m.in != nil {
		b, err := m.in.ReadByte()
		if err == nil {
			m.tape[m.ptr] = uint64(b) & m.pol.cellMask
			return nil
		}
		if err != io.EOF {
			return errors.ReadFailed(m.ip, err)
		}
	}

	// Input exhausted. Never an error; the variant's policy decides the
	// cell's fate.
	if m.pol.exhaust == ExhaustZero {
		m.tape[m.ptr] = 0
	}
	return nil
}

// Output returns the output accumulated so far.
func (m *Machine) Output() string {
	return m.out.String()
}

// Steps returns the number of steps executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Pointer returns the current data pointer position.
func (m *Machine) Pointer() int {
	return m.ptr
}

// Tape returns a copy of the current tape contents.
func (m *Machine) Tape() []uint64 {
	tape := make([]uint64, len(m.tape))
	copy(tape, m.tape)
	return tape
}
