package limb

import "math/bits"

//go:generate go run ../../misc/reciptable --out reciprocal_table.go

// Reciprocal computes floor((2^128 - 1) / d) - 2^64 for a normalized divisor
// d >= 2^63, following algorithm 2 of Möller & Granlund, "Improved division
// by invariant integers" (2010).
//
// A 10-bit seed is looked up from the top 9 bits of d and refined to the full
// 64 bits.
func Reciprocal(d uint64) uint64 {
	if d < 1<<63 {
		panic("limb: reciprocal of unnormalized divisor")
	}

	d0 := d & 1
	d9 := d >> 55
	d40 := d>>24 + 1
	d63 := d>>1 + d0

	v0 := uint64(reciprocalTable[d9-256])
	v1 := v0<<11 - (v0*v0*d40)>>40 - 1
	v2 := v1<<13 + (v1*(1<<60-v1*d40))>>47

	e := (v2>>1)&(-d0) - v2*d63
	hi, _ := bits.Mul64(v2, e)
	v3 := hi>>1 + v2<<31

	// v4 = v3 - hi(v3*d + d) - d
	hi, lo := bits.Mul64(v3, d)
	_, c := bits.Add64(lo, d, 0)
	hi += c
	return v3 - hi - d
}

// ReciprocalRef computes the same value as Reciprocal using a hardware
// division. It exists as a reference for tests and tooling.
func ReciprocalRef(d uint64) uint64 {
	if d < 1<<63 {
		panic("limb: reciprocal of unnormalized divisor")
	}
	// (2^128 - 1) - 2^64*d == (^d << 64) | (2^64 - 1)
	q, _ := bits.Div64(^d, ^uint64(0), d)
	return q
}

// Reciprocal2 computes floor((2^192 - 1) / d) - 2^64 for the normalized
// two-limb divisor d = d1:d0, d1 >= 2^63 (MG10 algorithm 6).
func Reciprocal2(d1, d0 uint64) uint64 {
	v := Reciprocal(d1)
	p := d1*v + d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}

	t1, t0 := bits.Mul64(v, d0)
	p += t1
	if p < t1 {
		v--
		if p > d1 || (p == d1 && t0 >= d0) {
			v--
		}
	}
	return v
}

// Div2x1 divides the two-limb value u1:u0 by the normalized d using the
// precomputed v = Reciprocal(d) (MG10 algorithm 4). It requires u1 < d.
func Div2x1(u1, u0, d, v uint64) (q, r uint64) {
	// q1:q0 = v*u1 + u1:u0
	q1, q0 := bits.Mul64(v, u1)
	var c uint64
	q0, c = bits.Add64(q0, u0, 0)
	q1, _ = bits.Add64(q1, u1, c)

	q1++
	r = u0 - q1*d
	if r > q0 {
		q1--
		r += d
	}
	if r >= d {
		q1++
		r -= d
	}
	return q1, r
}

// Div3x2 divides the three-limb value u2:u1:u0 by the normalized two-limb
// divisor d1:d0 using v = Reciprocal2(d1, d0) (MG10 algorithm 5). It requires
// u2:u1 < d1:d0 and returns the quotient limb and the two-limb remainder.
func Div3x2(u2, u1, u0, d1, d0, v uint64) (q, r1, r0 uint64) {
	// q:q0 = v*u2 + u2:u1
	q, q0 := bits.Mul64(v, u2)
	var c uint64
	q0, c = bits.Add64(q0, u1, 0)
	q, _ = bits.Add64(q, u2, c)

	r1 = u1 - q*d1
	t1, t0 := bits.Mul64(d0, q)

	// r1:r0 = r1:u0 - t1:t0 - d1:d0
	var b uint64
	r0, b = bits.Sub64(u0, t0, 0)
	r1, _ = bits.Sub64(r1, t1, b)
	r0, b = bits.Sub64(r0, d0, 0)
	r1, _ = bits.Sub64(r1, d1, b)

	q++
	if r1 >= q0 {
		q--
		r0, c = bits.Add64(r0, d0, 0)
		r1, _ = bits.Add64(r1, d1, c)
	}
	if r1 > d1 || (r1 == d1 && r0 >= d0) {
		q++
		r0, b = bits.Sub64(r0, d0, 0)
		r1, _ = bits.Sub64(r1, d1, b)
	}
	return q, r1, r0
}
