package limb

import "math/bits"

// Number of limbs for which DivRem's scratch space lives on the stack.
const inlineScratch = 16

// DivRem computes u / v, writing the quotient into q and the remainder into r.
//
// len(q) must be at least len(u) and len(r) at least len(v); any excess limbs
// are zeroed. q and r must not alias u or v, which are left untouched.
// DivRem panics if v is zero.
func DivRem(q, r, u, v []uint64) {
	n := Len(v)
	if n == 0 {
		panic("wideint: division by zero")
	}
	v = v[:n]
	m := Len(u)
	u = u[:m]

	for i := range q {
		q[i] = 0
	}
	for i := range r {
		r[i] = 0
	}

	if Cmp(u, v) < 0 {
		copy(r, u)
		return
	}

	if n == 1 {
		r[0] = DivNx1(q, u, v[0])
		return
	}

	// Normalize: shift both operands so the divisor's top bit is set. The
	// numerator gets an extra limb to hold the bits shifted out.
	shift := uint(bits.LeadingZeros64(v[n-1]))

	var ubuf, vbuf [inlineScratch]uint64
	var un, vn []uint64
	if m+1 <= inlineScratch {
		un = ubuf[:m+1]
	} else {
		un = make([]uint64, m+1)
	}
	if n <= inlineScratch {
		vn = vbuf[:n]
	} else {
		vn = make([]uint64, n)
	}

	copy(un, u)
	un[m] = ShlSmall(un[:m], shift)
	copy(vn, v)
	ShlSmall(vn, shift)

	if n == 2 {
		r1, r0 := divNx2(q, un, vn[1], vn[0])
		r[0] = r0>>shift | r1<<(64-shift)
		r[1] = r1 >> shift
		return
	}

	divNxM(q, un, vn)
	ShrSmall(un[:n], shift)
	copy(r, un[:n])
}

// DivNx1 divides u by the single limb d (which need not be normalized),
// writing the quotient into q and returning the remainder. len(q) must be at
// least len(u).
func DivNx1(q, u []uint64, d uint64) (rem uint64) {
	if d == 0 {
		panic("wideint: division by zero")
	}
	shift := uint(bits.LeadingZeros64(d))
	d <<= shift
	v := Reciprocal(d)

	// Feed the numerator through the shift one limb at a time rather than
	// materialising a shifted copy.
	var hi uint64
	if shift != 0 && len(u) > 0 {
		hi = u[len(u)-1] >> (64 - shift)
	}
	for i := len(u) - 1; i >= 0; i-- {
		lo := u[i] << shift
		if shift != 0 && i > 0 {
			lo |= u[i-1] >> (64 - shift)
		}
		q[i], hi = Div2x1(hi, lo, d, v)
	}
	return hi >> shift
}

// divNx2 divides the normalized numerator u (with its extra top limb) by the
// normalized divisor d1:d0, writing len(u)-2 quotient limbs into q and
// returning the normalized remainder.
func divNx2(q, u []uint64, d1, d0 uint64) (r1, r0 uint64) {
	v := Reciprocal2(d1, d0)
	top := len(u) - 1
	r1, r0 = u[top], u[top-1]
	for j := top - 2; j >= 0; j-- {
		q[j], r1, r0 = Div3x2(r1, r0, u[j], d1, d0, v)
	}
	return r1, r0
}

// divNxM implements Knuth's algorithm D for a normalized divisor v of at
// least three limbs. u holds the normalized numerator with one extra top
// limb; on return its low len(v) limbs hold the (normalized) remainder and
// q holds len(u)-len(v) quotient limbs.
func divNxM(q, u, v []uint64) {
	n := len(v)
	d1, d0 := v[n-1], v[n-2]
	rv := Reciprocal2(d1, d0)

	for j := len(u) - n - 1; j >= 0; j-- {
		u2, u1, u0 := u[j+n], u[j+n-1], u[j+n-2]

		// The top two limbs of the window can not exceed the divisor prefix.
		// When they are equal the quotient limb is the maximum.
		var qhat uint64
		if u2 == d1 && u1 == d0 {
			qhat = ^uint64(0)
		} else {
			qhat, _, _ = Div3x2(u2, u1, u0, d1, d0, rv)
		}

		borrow := SubMulNx1(u[j:j+n], v, qhat)
		var b uint64
		u[j+n], b = bits.Sub64(u[j+n], borrow, 0)
		if b != 0 {
			// qhat was one too large.
			qhat--
			c := AddN(u[j:j+n], v, 0)
			u[j+n] += c
		}
		q[j] = qhat
	}
}
