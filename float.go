package wideint

import (
	"math"
)

// Float64 returns the float64 nearest to u, rounding half to even. Values too
// large for a float64 return +Inf.
func (u Uint[W]) Float64() float64 {
	top, exp := u.MostSignificantBits()
	if exp == 0 {
		return float64(top)
	}

	// The bits below the top 64 only matter for rounding: fold them into a
	// sticky bit.
	if u.TrailingZeros() < exp {
		top |= 1
	}
	if exp > math.MaxInt32 {
		return math.Inf(1)
	}
	return math.Ldexp(float64(top), int(exp))
}

// TryFromFloat64 creates a Uint from a float64, truncating any fractional
// part towards zero.
//
// NaN and ±Inf fail with ErrNotANumber, values of -1 or less with
// ErrValueNegative and values of 2^BITS or more with an *OverflowError.
func TryFromFloat64[W Width](f float64) (u Uint[W], err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return u, ErrNotANumber
	}
	if f <= -1 {
		return u, ErrValueNegative
	}
	if f < 1 {
		return u, nil
	}
	if f < wrapUint64Float {
		return TryFrom64[W](uint64(f))
	}

	fbits := math.Float64bits(f)
	exp := uint((fbits>>52)&0x7ff) - 1023
	mant := fbits&(1<<52-1) | 1<<52
	if exp >= layoutOf[W]().bits {
		return u, overflowError[W]()
	}

	// exp >= 64 here, so the mantissa is shifted up without losing bits.
	m, err := TryFrom64[W](mant)
	if err != nil {
		return u, overflowError[W]()
	}
	u, ok := m.CheckedLsh(exp - 52)
	if !ok {
		return Uint[W]{}, overflowError[W]()
	}
	return u, nil
}
