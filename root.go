package wideint

import (
	"math"
)

// Root returns the floor of the degree-th root of u. It panics if degree is
// 0.
//
// The result is found by Newton iteration seeded from a floating point
// estimate.
func (u Uint[W]) Root(degree uint) Uint[W] {
	if degree == 0 {
		panic("wideint: root degree must be greater than zero")
	}
	if u.IsZero() {
		return u
	}
	if degree >= layoutOf[W]().bits {
		return One[W]()
	}
	if degree == 1 {
		return u
	}

	result, ok := ApproxPow2[W](u.ApproxLog2() / float64(degree))
	if !ok {
		result = Max[W]()
	}
	deg := WrappingFrom64[W](uint64(degree))
	degM1 := WrappingFrom64[W](uint64(degree - 1))

	decreasing := false
	for {
		var division Uint[W]
		if power, ok := result.CheckedPow(degM1); ok && !power.IsZero() {
			division = u.Quo(power)
		}
		next := division.Add(degM1.Mul(result)).Quo(deg)

		switch c := next.Cmp(result); {
		case c == 0, decreasing && c > 0:
			return result
		case c < 0:
			decreasing = true
		}
		result = next
	}
}

// Sqrt returns the floor of the square root of u.
func (u Uint[W]) Sqrt() Uint[W] { return u.Root(2) }

// Log returns the floor of the base-base logarithm of u. It panics if u is
// 0 or base is below 2.
func (u Uint[W]) Log(base Uint[W]) uint {
	if u.IsZero() {
		panic("wideint: logarithm of zero")
	}
	two := WrappingFrom64[W](2)
	if layoutOf[W]().bits < 2 || base.LessThan(two) {
		panic("wideint: logarithm base must be at least 2")
	}
	if base == two {
		return u.BitLen() - 1
	}
	if u.LessThan(base) {
		return 0
	}

	result := uint(u.ApproxLog2() / base.ApproxLog2())

	// The estimate is off by at most one in either direction.
	for result > 0 {
		value, ok := base.CheckedPow(WrappingFrom64[W](uint64(result)))
		if ok && value.LessOrEqualTo(u) {
			break
		}
		result--
	}
	for {
		value, ok := base.CheckedPow(WrappingFrom64[W](uint64(result + 1)))
		if !ok || value.GreaterThan(u) {
			break
		}
		result++
	}
	return result
}

// CheckedLog is Log, reporting false instead of panicking.
func (u Uint[W]) CheckedLog(base Uint[W]) (uint, bool) {
	if u.IsZero() || layoutOf[W]().bits < 2 || base.LessThan(WrappingFrom64[W](2)) {
		return 0, false
	}
	return u.Log(base), true
}

// Log2 returns the floor of the base 2 logarithm of u. It panics if u is 0.
func (u Uint[W]) Log2() uint {
	if u.IsZero() {
		panic("wideint: logarithm of zero")
	}
	return u.BitLen() - 1
}

// Log10 returns the floor of the base 10 logarithm of u. It panics if u is 0
// or the width can not hold 10.
func (u Uint[W]) Log10() uint {
	ten, err := TryFrom64[W](10)
	if err != nil {
		if u.IsZero() {
			panic("wideint: logarithm of zero")
		}
		return 0
	}
	return u.Log(ten)
}

// ApproxLog2 returns an approximation of log2(u) computed from the 64 most
// significant bits. It is -Inf for 0.
func (u Uint[W]) ApproxLog2() float64 {
	top, exp := u.MostSignificantBits()
	return math.Log2(float64(top)) + float64(exp)
}

// ApproxLog10 returns an approximation of log10(u).
func (u Uint[W]) ApproxLog10() float64 {
	return u.ApproxLog2() / math.Log2(10)
}

// ApproxLog returns an approximation of the logarithm of u in an arbitrary
// base.
func (u Uint[W]) ApproxLog(base float64) float64 {
	return u.ApproxLog2() / math.Log2(base)
}

// ApproxPow2 returns an approximation of 2^exp rounded to the nearest
// integer, or false if it does not fit.
func ApproxPow2[W Width](exp float64) (Uint[W], bool) {
	const (
		log2OnePointFive = 0.5849625007211562
		exp2To63         = 9223372036854775808.0
		exp2To64         = 18446744073709551616.0
	)

	if exp < log2OnePointFive {
		if exp < -1 {
			return Uint[W]{}, true
		}
		v, err := TryFrom64[W](1)
		return v, err == nil
	}
	if exp > float64(layoutOf[W]().bits) {
		return Uint[W]{}, false
	}

	whole, fract := math.Modf(exp)
	shift := uint(whole)
	// Exp2 of a fraction just below 1 may round up to 2, which would
	// overflow the conversion.
	top := uint64(math.MaxUint64)
	if f := math.Exp2(fract) * exp2To63; f < exp2To64 {
		top = uint64(f)
	}

	if shift >= 63 {
		v, err := TryFrom64[W](top)
		if err != nil {
			return Uint[W]{}, false
		}
		return v.CheckedLsh(shift - 63)
	}

	// Divide by 2^(63-shift), rounding to nearest.
	s := 63 - shift
	top = top>>s + (top>>(s-1))&1
	v, err := TryFrom64[W](top)
	return v, err == nil
}
