// Package brainfuck provides an interpreter for the brainfuck language.
//
// The interpreter executes programs over a linear tape of cells with a
// single movable data pointer, eight primitive instructions and bracket
// delimited loops. Four language variants adjust cell width, overflow
// behavior, tape boundary behavior and tape sizing.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	brainfuck/       Root package with the Execute one-shot helper
//	├── bfi/         High-level API for loading and evaluating programs
//	├── engine/      Low-level tape machine and variant policies
//	├── program/     Source scanning and loop resolution
//	├── errors/      Structured error types for interpreter faults
//	└── cmd/run/     CLI runner with an interactive playground
//
// # Quick Start
//
// Run a program in one call:
//
//	out, err := brainfuck.Execute("++++++++[>++++++++<-]>+.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // "A"
//
// Or keep the two phases separate to surface bracket faults before any
// instruction executes:
//
//	interp := bfi.New(bfi.WithVariant(engine.VariantStrict))
//	mod, err := interp.Load(source) // fails fast on malformed brackets
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := mod.Evaluate()
//
// # Thread Safety
//
// Evaluation is single-threaded and blocking. Every evaluation owns its
// tape, pointers and output exclusively, so independent evaluations are
// safe to run in parallel goroutines without locking. A single engine
// Machine is NOT safe for concurrent use.
//
// # Faults
//
// All faults are deterministic properties of the program/configuration
// pair: unbalanced_loop at load, boundary_violation and
// step_limit_exceeded at run. Input exhaustion on ',' is a policy outcome,
// never an error. See the errors package.
package brainfuck
