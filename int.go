package wideint

import (
	"fmt"
	"math/big"
)

// Int is a two's complement signed view of a Uint: bit BITS-1 is the sign.
// Addition, subtraction, multiplication and left shifts are identical to the
// unsigned operations; negation, comparison and right shifts differ.
type Int[W Width] Uint[W]

// AsInt reinterprets u as a two's complement signed value.
func (u Uint[W]) AsInt() Int[W] { return Int[W](u) }

// Uint reinterprets i as an unsigned value.
func (i Int[W]) Uint() Uint[W] { return Uint[W](i) }

// IntFromInt64 creates an Int from an int64, sign-extending to the width.
// Values that do not fit wrap.
func IntFromInt64[W Width](v int64) Int[W] {
	u := WrappingFrom64[W](uint64(v))
	if v < 0 {
		x := u.words()
		for j := 1; j < len(x); j++ {
			x[j] = maxUint64
		}
		u.masked()
	}
	return Int[W](u)
}

// MaxInt returns 2^(BITS-1) - 1.
func MaxInt[W Width]() Int[W] {
	if layoutOf[W]().bits == 0 {
		return Int[W]{}
	}
	return Int[W](Max[W]().Rsh(1))
}

// MinInt returns -2^(BITS-1).
func MinInt[W Width]() Int[W] {
	width := layoutOf[W]().bits
	if width == 0 {
		return Int[W]{}
	}
	return Int[W](Uint[W]{}.SetBit(width-1, true))
}

func (i Int[W]) IsZero() bool { return Uint[W](i).IsZero() }

// IsNegative reports whether the sign bit is set.
func (i Int[W]) IsNegative() bool {
	width := layoutOf[W]().bits
	return width > 0 && Uint[W](i).Bit(width-1)
}

// Sign returns -1 if i < 0, 0 if i == 0 and +1 if i > 0.
func (i Int[W]) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

// Neg returns -i, wrapping for MinInt.
func (i Int[W]) Neg() Int[W] {
	return Int[W](Uint[W](i).Neg())
}

// OverflowingNeg returns -i and reports whether i was MinInt, whose negation
// is not representable.
func (i Int[W]) OverflowingNeg() (Int[W], bool) {
	return i.Neg(), layoutOf[W]().bits > 0 && i == MinInt[W]()
}

// Abs returns the magnitude of i. The result is unsigned, so MinInt's
// magnitude is exact.
func (i Int[W]) Abs() Uint[W] {
	if i.IsNegative() {
		return Uint[W](i).Neg()
	}
	return Uint[W](i)
}

// Cmp compares i and n as signed values.
func (i Int[W]) Cmp(n Int[W]) int {
	in, nn := i.IsNegative(), n.IsNegative()
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	return Uint[W](i).Cmp(Uint[W](n))
}

func (i Int[W]) Equal(n Int[W]) bool       { return i == n }
func (i Int[W]) LessThan(n Int[W]) bool    { return i.Cmp(n) < 0 }
func (i Int[W]) GreaterThan(n Int[W]) bool { return i.Cmp(n) > 0 }

func (i Int[W]) Add(n Int[W]) Int[W] { return Int[W](Uint[W](i).Add(Uint[W](n))) }
func (i Int[W]) Sub(n Int[W]) Int[W] { return Int[W](Uint[W](i).Sub(Uint[W](n))) }
func (i Int[W]) Mul(n Int[W]) Int[W] { return Int[W](Uint[W](i).Mul(Uint[W](n))) }

func (i Int[W]) Lsh(n uint) Int[W] { return Int[W](Uint[W](i).Lsh(n)) }

// Rsh shifts i right by n, preserving the sign.
func (i Int[W]) Rsh(n uint) Int[W] { return Int[W](Uint[W](i).ArithmeticRsh(n)) }

// ToBig returns i as a signed *big.Int.
func (i Int[W]) ToBig() *big.Int {
	v := i.Abs().ToBig()
	if i.IsNegative() {
		v.Neg(v)
	}
	return v
}

// String returns the signed decimal representation of i.
func (i Int[W]) String() string {
	if i.IsNegative() {
		return "-" + i.Abs().String()
	}
	return Uint[W](i).String()
}

// Format implements fmt.Formatter, printing the signed value for every verb.
func (i Int[W]) Format(s fmt.State, c rune) {
	abs := i.Abs()
	x := make([]uint64, len(abs.limbs))
	copy(x, abs.words())
	formatNumber(s, c, i.IsNegative(), x, "wideint.Int")
}
