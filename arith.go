package wideint

import (
	"github.com/shabbyrobe/go-wideint/internal/limb"
)

func (u Uint[W]) OverflowingAdd(n Uint[W]) (Uint[W], bool) {
	carry := limb.AddN(u.words(), n.words(), 0)
	masked := u.masked()
	return u, carry != 0 || masked
}

func (u Uint[W]) OverflowingSub(n Uint[W]) (Uint[W], bool) {
	borrow := limb.SubN(u.words(), n.words(), 0)
	u.masked()
	return u, borrow != 0
}

// Add returns u + n modulo 2^BITS.
func (u Uint[W]) Add(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingAdd(n)
	return v
}

// Sub returns u - n modulo 2^BITS.
func (u Uint[W]) Sub(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingSub(n)
	return v
}

func (u Uint[W]) CheckedAdd(n Uint[W]) (Uint[W], bool) {
	v, overflow := u.OverflowingAdd(n)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

func (u Uint[W]) CheckedSub(n Uint[W]) (Uint[W], bool) {
	v, overflow := u.OverflowingSub(n)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

// SaturatingAdd returns u + n, clamped to Max on overflow.
func (u Uint[W]) SaturatingAdd(n Uint[W]) Uint[W] {
	v, overflow := u.OverflowingAdd(n)
	if overflow {
		return Max[W]()
	}
	return v
}

// SaturatingSub returns u - n, clamped to 0 on underflow.
func (u Uint[W]) SaturatingSub(n Uint[W]) Uint[W] {
	v, overflow := u.OverflowingSub(n)
	if overflow {
		return Uint[W]{}
	}
	return v
}

func (u Uint[W]) Inc() Uint[W] {
	limb.AddW(u.words(), 1)
	u.masked()
	return u
}

func (u Uint[W]) Dec() Uint[W] {
	limb.SubW(u.words(), 1)
	u.masked()
	return u
}

// AbsDiff returns |u - n|.
func (u Uint[W]) AbsDiff(n Uint[W]) Uint[W] {
	if u.LessThan(n) {
		return n.Sub(u)
	}
	return u.Sub(n)
}

// Neg returns the additive inverse of u modulo 2^BITS, i.e. 2^BITS - u.
func (u Uint[W]) Neg() Uint[W] {
	return u.Not().Inc()
}

// OverflowingNeg returns -u and reports whether u was non-zero.
func (u Uint[W]) OverflowingNeg() (Uint[W], bool) {
	return u.Neg(), !u.IsZero()
}

// CheckedNeg returns -u if it is representable, which is only the case for 0.
func (u Uint[W]) CheckedNeg() (Uint[W], bool) {
	if !u.IsZero() {
		return Uint[W]{}, false
	}
	return u, true
}

func (u Uint[W]) OverflowingMul(n Uint[W]) (out Uint[W], overflow bool) {
	overflow = limb.AddMul(out.words(), u.words(), n.words())
	if out.masked() {
		overflow = true
	}
	return out, overflow
}

// Mul returns u * n modulo 2^BITS.
func (u Uint[W]) Mul(n Uint[W]) Uint[W] {
	v, _ := u.OverflowingMul(n)
	return v
}

func (u Uint[W]) CheckedMul(n Uint[W]) (Uint[W], bool) {
	v, overflow := u.OverflowingMul(n)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

func (u Uint[W]) SaturatingMul(n Uint[W]) Uint[W] {
	v, overflow := u.OverflowingMul(n)
	if overflow {
		return Max[W]()
	}
	return v
}

// WideningMul returns the full product of a and b in the width WR, which
// must be at least as wide as the two operand widths combined.
func WideningMul[WR, W, W2 Width](a Uint[W], b Uint[W2]) (out Uint[WR]) {
	if BitsOf[WR]() < BitsOf[W]()+BitsOf[W2]() {
		panic("wideint: widening multiplication result too narrow")
	}
	limb.AddMul(out.words(), a.words(), b.words())
	return out
}

// RingInverse returns the multiplicative inverse of u modulo 2^BITS. It
// exists only for odd u.
func (u Uint[W]) RingInverse() (result Uint[W], ok bool) {
	l := layoutOf[W]()
	x := u.words()
	if l.bits == 0 || x[0]&1 == 0 {
		return result, false
	}

	// Newton iteration on the low limb: the seed is correct to 4 bits and
	// each step doubles that.
	n := x[0]
	inv := (n * 3) ^ 2
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	result.words()[0] = inv

	two := WrappingFrom64[W](2)
	for correct := 1; correct < l.limbs; correct *= 2 {
		result = result.Mul(two.Sub(u.Mul(result)))
	}
	result.masked()
	return result, true
}

func (u Uint[W]) OverflowingPow(exp Uint[W]) (result Uint[W], overflow bool) {
	if layoutOf[W]().bits == 0 {
		return u, false
	}

	result = One[W]()
	var baseOverflow bool
	for !exp.IsZero() {
		if exp.words()[0]&1 == 1 {
			var o bool
			result, o = result.OverflowingMul(u)
			// A base that overflowed only matters when it is used.
			overflow = overflow || o || baseOverflow
		}
		exp = exp.Rsh(1)
		if !exp.IsZero() {
			var o bool
			u, o = u.OverflowingMul(u)
			baseOverflow = baseOverflow || o
		}
	}
	return result, overflow
}

// Pow returns u raised to exp modulo 2^BITS.
func (u Uint[W]) Pow(exp Uint[W]) Uint[W] {
	v, _ := u.OverflowingPow(exp)
	return v
}

func (u Uint[W]) CheckedPow(exp Uint[W]) (Uint[W], bool) {
	v, overflow := u.OverflowingPow(exp)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

func (u Uint[W]) SaturatingPow(exp Uint[W]) Uint[W] {
	v, overflow := u.OverflowingPow(exp)
	if overflow {
		return Max[W]()
	}
	return v
}
