package limb

import "math/bits"

// MulRedc computes a * b * R^-1 mod modulus, R = 2^(64*N), N = len(modulus),
// and writes it into dst. inv must be -modulus^-1 mod 2^64 and a, b must be
// reduced. dst may alias a or b.
//
// The loop is the coarsely integrated operand scanning (CIOS) form of
// Montgomery multiplication.
func MulRedc(dst, a, b, modulus []uint64, inv uint64) {
	n := len(modulus)
	var buf [inlineScratch]uint64
	var result []uint64
	if n <= inlineScratch {
		result = buf[:n]
	} else {
		result = make([]uint64, n)
	}

	// The accumulator only needs an extra carry bit when 2*modulus can
	// exceed R.
	wide := modulus[n-1] >= 0x7fffffffffffffff

	var carry uint64
	for _, bw := range b[:n] {
		var m, c1, c2 uint64
		for i := 0; i < n; i++ {
			var v uint64
			v, c1 = MulAdd2(a[i], bw, result[i], c1)
			if i == 0 {
				m = v * inv
			}
			v, c2 = MulAdd2(modulus[i], m, v, c2)
			if i > 0 {
				result[i-1] = v
			}
		}
		var next uint64
		result[n-1], next = bits.Add64(c1, c2, carry)
		if wide {
			carry = next
		}
	}

	reduceCarry(result, modulus, carry)
	copy(dst, result)
}

// SquareRedc computes a * a * R^-1 mod modulus into dst. See MulRedc.
func SquareRedc(dst, a, modulus []uint64, inv uint64) {
	n := len(modulus)
	var buf [2 * inlineScratch]uint64
	var t []uint64
	if 2*n <= len(buf) {
		t = buf[:2*n]
	} else {
		t = make([]uint64, 2*n)
	}

	AddMul(t, a[:n], a[:n])
	Redc(t, modulus, inv)
	copy(dst, t[n:])
}

// Redc performs Montgomery reduction of the double-width value t in place.
// len(t) must be 2*len(modulus); the reduced result is left in the upper
// half of t.
func Redc(t, modulus []uint64, inv uint64) {
	n := len(modulus)
	var extra uint64
	for i := 0; i < n; i++ {
		m := t[i] * inv
		c := AddMulNx1(t[i:i+n], modulus, m)
		t[i+n], extra = bits.Add64(t[i+n], c, extra)
	}
	reduceCarry(t[n:], modulus, extra)
}

// reduceCarry reduces value + carry*R, which must be below 2*modulus, to
// the range [0, modulus).
func reduceCarry(value, modulus []uint64, carry uint64) {
	n := len(modulus)
	var buf [inlineScratch]uint64
	var reduced []uint64
	if n <= inlineScratch {
		reduced = buf[:n]
	} else {
		reduced = make([]uint64, n)
	}
	copy(reduced, value)
	borrow := SubN(reduced, modulus, 0)
	if carry != 0 || borrow == 0 {
		copy(value, reduced)
	}
}
