// Package bfi provides the high-level API for the brainfuck interpreter.
//
// # Quick Start
//
//	interp := bfi.New(bfi.WithTapeLength(2000))
//
//	// Load a program; malformed brackets fail here, before anything runs
//	mod, err := interp.Load("++++++++++[>+++++++<-]>.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := mod.Evaluate()
//	fmt.Println(out)
//
// # Two-Phase Execution
//
// Load validates the source and resolves its loop structure eagerly, so an
// UnbalancedLoop fault surfaces before any instruction executes. Evaluate
// then runs the program on a fresh machine. Each Evaluate call starts from
// the initial state, so repeated calls on the same Module are idempotent
// (aside from consuming the configured input source).
//
// # Variants
//
// WithVariant selects among the four language flavors; see package engine
// for the policy each one bundles.
package bfi
