package limb

import "math/bits"

// AddMulNx1 computes lhs += a * b over len(lhs) limbs and returns the carry
// limb. len(a) must be at least len(lhs).
func AddMulNx1(lhs, a []uint64, b uint64) (carry uint64) {
	for i := 0; i < len(lhs) && i < len(a); i++ {
		lhs[i], carry = MulAdd2(a[i], b, lhs[i], carry)
	}
	return carry
}

// SubMulNx1 computes lhs -= a * b over len(lhs) limbs and returns the
// borrow limb, i.e. the amount that must still be subtracted from the limb
// above lhs.
func SubMulNx1(lhs, a []uint64, b uint64) (borrow uint64) {
	for i := 0; i < len(lhs) && i < len(a); i++ {
		hi, lo := bits.Mul64(a[i], b)
		var c uint64
		lo, c = bits.Add64(lo, borrow, 0)
		hi += c
		lhs[i], c = bits.Sub64(lhs[i], lo, 0)
		borrow = hi + c
	}
	return borrow
}

// MulNx1 computes lhs *= b in place and returns the carry limb.
func MulNx1(lhs []uint64, b uint64) (carry uint64) {
	for i := range lhs {
		lhs[i], carry = MulAdd2(lhs[i], b, carry, 0)
	}
	return carry
}

// AddMul computes lhs += a * b, truncated to len(lhs) limbs, using schoolbook
// multiplication. It reports whether any non-zero part of the product (or a
// carry) fell outside lhs.
func AddMul(lhs, a, b []uint64) (overflow bool) {
	// Leading zero limbs of an operand only shift the product up.
	for len(a) > 0 && a[0] == 0 {
		a = a[1:]
		if len(lhs) > 0 {
			lhs = lhs[1:]
		}
	}
	a = a[:Len(a)]
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
		if len(lhs) > 0 {
			lhs = lhs[1:]
		}
	}
	b = b[:Len(b)]

	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(lhs) == 0 {
		return true
	}
	if len(b) > len(a) {
		a, b = b, a
	}

	for i, w := range b {
		if len(lhs) == 0 {
			// b's top limb is non-zero.
			return true
		}
		if w == 0 && i < len(b)-1 {
			lhs = lhs[1:]
			continue
		}
		if len(lhs) >= len(a) {
			carry := AddMulNx1(lhs[:len(a)], a, w)
			if AddW(lhs[len(a):], carry) != 0 {
				overflow = true
			}
		} else {
			// a's top limb is non-zero and w is non-zero, so part of the
			// product lands above lhs.
			overflow = true
			AddMulNx1(lhs, a[:len(lhs)], w)
		}
		lhs = lhs[1:]
	}
	return overflow
}
