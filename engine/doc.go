// Package engine provides the low-level brainfuck execution machine.
//
// A Machine owns the tape, the data pointer, the instruction pointer and the
// output buffer for one evaluation. It consumes a loaded program.Program,
// whose jump table resolves bracket instructions in constant time.
//
// # Execution Flow
//
//  1. program.Load() validates the source and builds the jump table
//  2. New() creates a Machine in its initial state (tape zeroed, pointers
//     at 0, output empty)
//  3. Run() drives the dispatch loop to completion or to a fault
//
// # Variants
//
// The four language flavors differ only in cell width, pointer boundary
// behavior, tape sizing and input exhaustion handling. They are expressed
// as one policy value selected by Variant, not as separate interpreters:
//
//	Variant   Cells          Boundary            Tape      ',' exhausted
//	──────────────────────────────────────────────────────────────────────
//	classic   8-bit wrap     wrap to far end     fixed     cell <- 0
//	strict    8-bit wrap     fault               fixed     cell unchanged
//	wide      64-bit wrap    grow right/fault    growable  cell <- 0
//	word      16-bit wrap    wrap to far end     fixed     cell <- 0
//
// # Faults
//
// Run fails with boundary_violation when a policy forbids a pointer move,
// and with step_limit_exceeded when a configured step budget runs out. Both
// are deterministic properties of the program/configuration pair; re-running
// without change reproduces the same fault.
package engine
