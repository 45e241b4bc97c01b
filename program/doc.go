// Package program loads brainfuck source and resolves its loop structure.
//
// Load scans the source once, left to right, and records a bidirectional
// mapping between every matched pair of loop brackets. Malformed nesting is
// rejected here, before any instruction can execute:
//
//	prog, err := program.Load("++[>+<-]")
//	if err != nil {
//	    // [resolve] unbalanced_loop at N: ...
//	}
//	prog.Jump(2) // 7, the offset of the matching ']'
//
// A loaded Program is immutable and safe for concurrent use.
package program
