package towerfield

import "fmt"

// Bit is an element of the one-bit subfield GF(2). Transparent operands
// hold their data as Bit multilinears; ExtensionDegree reports how many
// Bits pack into one P lane (8, one per byte of F).
type Bit byte

// BitZero and BitOne are the two elements of GF(2).
func BitZero() Bit { return Bit(0) }
func BitOne() Bit  { return Bit(1) }

// BitFromInt converts any nonzero int to BitOne, zero to BitZero.
func BitFromInt(v int) Bit {
	if v != 0 {
		return BitOne()
	}
	return BitZero()
}

// ToF embeds a Bit into the large field F. Bit 0 maps to F zero, bit 1 to
// F one; this is the canonical subfield embedding GF(2) -> GF(2^8).
func (b Bit) ToF() F {
	if b == 0 {
		return FZero()
	}
	return FOne()
}

// ExtensionDegreeBits is the number of GF(2) elements packed into one
// GF(2^8) scalar. switchover_fn is consulted with this value.
const ExtensionDegreeBits = 8

// P is the packed field: a SIMD-lane bundle whose Scalar is F. This
// tower packs a single F lane (degree-1 packing), the trivial but valid
// instance of the packed-field abstraction: every operation below
// exists so callers depend on a distinct packed type rather than
// aliasing F directly.
type P struct {
	v F
}

// PFromScalar packs a single scalar into P.
func PFromScalar(f F) P { return P{v: f} }

// PZero and POne are the packed identities.
func PZero() P { return P{v: FZero()} }
func POne() P  { return P{v: FOne()} }

// Scalar returns the underlying F value.
func (p P) Scalar() F { return p.v }

// Add, Sub, Mul lift F's arithmetic to P.
func (p P) Add(q P) P { return P{v: p.v.Add(q.v)} }
func (p P) Sub(q P) P { return P{v: p.v.Sub(q.v)} }
func (p P) Mul(q P) P { return P{v: p.v.Mul(q.v)} }

// IsZero reports whether the packed value is zero.
func (p P) IsZero() bool { return p.v.IsZero() }

// Equal reports value equality.
func (p P) Equal(q P) bool { return p.v.Equal(q.v) }

// String renders p for diagnostics.
func (p P) String() string { return fmt.Sprintf("P(%s)", p.v.String()) }
