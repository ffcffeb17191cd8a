package wideint

import "fmt"

// Bits is a fixed-width bit string backed by the same storage as Uint. It
// exposes only bitwise, shift and bit query operations. Conversions to and
// from Uint are free.
type Bits[W Width] Uint[W]

// AsBits reinterprets u as a bit string.
func (u Uint[W]) AsBits() Bits[W] { return Bits[W](u) }

// Uint reinterprets b as an unsigned integer.
func (b Bits[W]) Uint() Uint[W] { return Uint[W](b) }

func (b Bits[W]) Bit(i uint) bool              { return Uint[W](b).Bit(i) }
func (b Bits[W]) SetBit(i uint, v bool) Bits[W] { return Bits[W](Uint[W](b).SetBit(i, v)) }
func (b Bits[W]) Byte(i int) uint8             { return Uint[W](b).Byte(i) }
func (b Bits[W]) IsZero() bool                 { return Uint[W](b).IsZero() }
func (b Bits[W]) LeadingZeros() uint           { return Uint[W](b).LeadingZeros() }
func (b Bits[W]) LeadingOnes() uint            { return Uint[W](b).LeadingOnes() }
func (b Bits[W]) TrailingZeros() uint          { return Uint[W](b).TrailingZeros() }
func (b Bits[W]) TrailingOnes() uint           { return Uint[W](b).TrailingOnes() }
func (b Bits[W]) CountOnes() uint              { return Uint[W](b).CountOnes() }
func (b Bits[W]) CountZeros() uint             { return Uint[W](b).CountZeros() }

func (b Bits[W]) Not() Bits[W]            { return Bits[W](Uint[W](b).Not()) }
func (b Bits[W]) And(n Bits[W]) Bits[W]    { return Bits[W](Uint[W](b).And(Uint[W](n))) }
func (b Bits[W]) Or(n Bits[W]) Bits[W]     { return Bits[W](Uint[W](b).Or(Uint[W](n))) }
func (b Bits[W]) Xor(n Bits[W]) Bits[W]    { return Bits[W](Uint[W](b).Xor(Uint[W](n))) }
func (b Bits[W]) AndNot(n Bits[W]) Bits[W] { return Bits[W](Uint[W](b).AndNot(Uint[W](n))) }

func (b Bits[W]) Lsh(n uint) Bits[W]           { return Bits[W](Uint[W](b).Lsh(n)) }
func (b Bits[W]) Rsh(n uint) Bits[W]           { return Bits[W](Uint[W](b).Rsh(n)) }
func (b Bits[W]) ArithmeticRsh(n uint) Bits[W] { return Bits[W](Uint[W](b).ArithmeticRsh(n)) }
func (b Bits[W]) RotateLeft(k uint) Bits[W]    { return Bits[W](Uint[W](b).RotateLeft(k)) }
func (b Bits[W]) RotateRight(k uint) Bits[W]   { return Bits[W](Uint[W](b).RotateRight(k)) }
func (b Bits[W]) ReverseBits() Bits[W]         { return Bits[W](Uint[W](b).ReverseBits()) }

// String returns the bits as "0x"-prefixed lowercase hex.
func (b Bits[W]) String() string {
	return fmt.Sprintf("%#x", Uint[W](b))
}

// Format implements fmt.Formatter. Bits format as hex by default; the
// integer verbs behave as they do for Uint.
func (b Bits[W]) Format(s fmt.State, c rune) {
	if c == 'v' || c == 's' {
		fmt.Fprint(s, b.String())
		return
	}
	Uint[W](b).Format(s, c)
}
