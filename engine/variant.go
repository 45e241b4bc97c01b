package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundaryPolicy governs what happens when the data pointer would move
// outside the tape.
type BoundaryPolicy int

const (
	// BoundaryWrap cycles the pointer to the opposite end of the tape.
	BoundaryWrap BoundaryPolicy = iota
	// BoundaryFault aborts the evaluation with a boundary_violation error.
	BoundaryFault
	// BoundaryGrow extends the tape with zeroed cells when advancing past
	// the right end. Retreating past cell 0 still faults; the tape cannot
	// grow to the left.
	BoundaryGrow
)

// ExhaustPolicy governs what ',' does once the input source is exhausted.
// Exhaustion is never an error.
type ExhaustPolicy int

const (
	// ExhaustZero sets the current cell to 0.
	ExhaustZero ExhaustPolicy = iota
	// ExhaustHold leaves the current cell unchanged.
	ExhaustHold
)

// Variant selects a bundle of cell width, boundary, tape sizing and input
// exhaustion policies. Ordinals are part of the public contract: they are
// the bfi_type accepted by the one-shot entry point.
type Variant int

const (
	// VariantClassic matches the original interpreter: 8-bit wraparound
	// cells, pointer wraps at both tape ends, fixed tape, exhausted input
	// zeroes the cell.
	VariantClassic Variant = iota
	// VariantStrict keeps 8-bit cells but faults on any pointer move past
	// a tape end, and leaves the cell untouched on exhausted input.
	VariantStrict
	// VariantWide uses 64-bit cells, grows the tape on demand to the right
	// and faults on retreat past cell 0.
	VariantWide
	// VariantWord uses 16-bit wraparound cells with classic pointer
	// wrapping.
	VariantWord

	variantCount
)

var variantNames = [...]string{
	VariantClassic: "classic",
	VariantStrict:  "strict",
	VariantWide:    "wide",
	VariantWord:    "word",
}

func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// Variants returns all known variants in ordinal order.
func Variants() []Variant {
	vs := make([]Variant, variantCount)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// ParseVariant accepts a variant name or its ordinal.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Variant(n).Valid() {
		return Variant(n), nil
	}
	return 0, fmt.Errorf("unknown variant %q (want classic, strict, wide, word or 0-%d)", s, int(variantCount)-1)
}

// policy is the resolved knob set a Machine executes under. One policy
// value drives the whole dispatch loop; variants never get their own
// interpreter.
type policy struct {
	cellMask uint64
	boundary BoundaryPolicy
	exhaust  ExhaustPolicy
}

const (
	mask8  = uint64(1)<<8 - 1
	mask16 = uint64(1)<<16 - 1
	mask64 = ^uint64(0)
)

func (v Variant) policy() policy {
	switch v {
	case VariantStrict:
		return policy{cellMask: mask8, boundary: BoundaryFault, exhaust: ExhaustHold}
	case VariantWide:
		return policy{cellMask: mask64, boundary: BoundaryGrow, exhaust: ExhaustZero}
	case VariantWord:
		return policy{cellMask: mask16, boundary: BoundaryWrap, exhaust: ExhaustZero}
	default:
		return policy{cellMask: mask8, boundary: BoundaryWrap, exhaust: ExhaustZero}
	}
}
