package wideint

import (
	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// mul64 returns u * v modulo 2^BITS.
func (u Uint[W]) mul64(v uint64) Uint[W] {
	limb.MulNx1(u.words(), v)
	u.masked()
	return u
}

// lehmerPrefix returns the top 62 bits of a and the bits of b at the same
// offset. a must be at least b.
func lehmerPrefix[W Width](a, b Uint[W]) (ap, bp uint64) {
	if shift := int(a.BitLen()) - 62; shift > 0 {
		a, b = a.Rsh(uint(shift)), b.Rsh(uint(shift))
	}
	ap, _ = a.Uint64()
	bp, _ = b.Uint64()
	return ap, bp
}

// apply multiplies the pair (a, b) by the matrix m in the ring of integers
// modulo 2^BITS.
func apply[W Width](m limb.Matrix, a, b Uint[W]) (Uint[W], Uint[W]) {
	if m.Even {
		return a.mul64(m.M00).Sub(b.mul64(m.M01)), b.mul64(m.M11).Sub(a.mul64(m.M10))
	}
	return b.mul64(m.M01).Sub(a.mul64(m.M00)), a.mul64(m.M10).Sub(b.mul64(m.M11))
}

// Gcd returns the greatest common divisor of u and n. Gcd(0, n) is n.
func (u Uint[W]) Gcd(n Uint[W]) Uint[W] {
	a, b := u, n
	if a.LessThan(b) {
		a, b = b, a
	}
	for !b.IsZero() {
		m := limb.Lehmer(lehmerPrefix(a, b))
		if m.IsIdentity() {
			a, b = b, a.Rem(b)
			continue
		}
		a, b = apply(m, a, b)
	}
	return a
}

// GcdExtended returns the greatest common divisor g of u and n together
// with Bézout coefficients x and y, x <= n/g and y <= u/g. The sign reports
// which of the two identities holds:
//
//	sign:  g = u*x - n*y
//	!sign: g = n*y - u*x
func (u Uint[W]) GcdExtended(n Uint[W]) (g, x, y Uint[W], sign bool) {
	if layoutOf[W]().bits == 0 {
		return g, x, y, true
	}

	a, b := u, n
	swapped := a.LessThan(b)
	if swapped {
		a, b = b, a
	}

	s0, s1 := One[W](), Uint[W]{}
	t0, t1 := Uint[W]{}, One[W]()
	even := true
	for !b.IsZero() {
		m := limb.Lehmer(lehmerPrefix(a, b))
		if m.IsIdentity() {
			q, r := a.QuoRem(b)
			a, b = b, r
			s0, s1 = s1, s0.Sub(q.Mul(s1))
			t0, t1 = t1, t0.Sub(q.Mul(t1))
			even = !even
			continue
		}
		a, b = apply(m, a, b)
		s0, s1 = apply(m, s0, s1)
		t0, t1 = apply(m, t0, t1)
		even = even != !m.Even
	}

	// The coefficients alternate in sign; store their magnitudes.
	if even {
		t0 = t0.Neg()
	} else {
		s0 = s0.Neg()
	}
	if swapped {
		s0, t0 = t0, s0
		even = !even
	}
	return a, s0, t0, even
}

// Lcm returns the least common multiple of u and n, or false if it does not
// fit. The Lcm of 0 and anything is 0.
func (u Uint[W]) Lcm(n Uint[W]) (Uint[W], bool) {
	if u.IsZero() || n.IsZero() {
		return Uint[W]{}, true
	}
	return u.Quo(u.Gcd(n)).CheckedMul(n)
}

// InvMod returns the multiplicative inverse of u modulo m. It reports false
// if m is 0 or the inverse does not exist, i.e. gcd(u, m) != 1.
func (u Uint[W]) InvMod(m Uint[W]) (Uint[W], bool) {
	if m.IsZero() {
		return Uint[W]{}, false
	}
	a, b := m, u.ReduceMod(m)
	if b.IsZero() {
		return Uint[W]{}, false
	}

	t0, t1 := Uint[W]{}, One[W]()
	even := true
	for !b.IsZero() {
		mat := limb.Lehmer(lehmerPrefix(a, b))
		if mat.IsIdentity() {
			q, r := a.QuoRem(b)
			a, b = b, r
			t0, t1 = t1, t0.Sub(q.Mul(t1))
			even = !even
			continue
		}
		a, b = apply(mat, a, b)
		t0, t1 = apply(mat, t0, t1)
		even = even != !mat.Even
	}

	if a != One[W]() {
		return Uint[W]{}, false
	}
	if even {
		return m.Add(t0), true
	}
	return t0, true
}
