// Package limb implements the word-level algorithms used by the fixed-width
// integer types in package wideint.
//
// All routines work on little-endian slices of 64-bit limbs: index 0 is the
// least significant word. None of them know about the width mask; callers
// are responsible for masking the most significant limb.
package limb

import "math/bits"

// CarryingAdd returns a + b + carry and the carry out. carry must be 0 or 1.
func CarryingAdd(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

// BorrowingSub returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func BorrowingSub(a, b, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrow)
}

// MulAdd2 computes a*b + c + d as a 128-bit value. The result can not
// overflow: (2^64-1)^2 + 2*(2^64-1) == 2^128-1.
func MulAdd2(a, b, c, d uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var cc uint64
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	lo, cc = bits.Add64(lo, d, 0)
	hi += cc
	return lo, hi
}

// AddN adds rhs into lhs in place and returns the carry. len(rhs) must be
// at least len(lhs).
func AddN(lhs, rhs []uint64, carry uint64) uint64 {
	for i := 0; i < len(lhs) && i < len(rhs); i++ {
		lhs[i], carry = bits.Add64(lhs[i], rhs[i], carry)
	}
	return carry
}

// SubN subtracts rhs from lhs in place and returns the borrow. len(rhs) must
// be at least len(lhs).
func SubN(lhs, rhs []uint64, borrow uint64) uint64 {
	for i := 0; i < len(lhs) && i < len(rhs); i++ {
		lhs[i], borrow = bits.Sub64(lhs[i], rhs[i], borrow)
	}
	return borrow
}

// AddW adds a single word to lhs in place, returning the carry out of the
// most significant limb.
func AddW(lhs []uint64, w uint64) uint64 {
	for i := 0; i < len(lhs) && w != 0; i++ {
		lhs[i], w = bits.Add64(lhs[i], w, 0)
	}
	return w
}

// SubW subtracts a single word from lhs in place, returning the borrow.
func SubW(lhs []uint64, w uint64) uint64 {
	for i := 0; i < len(lhs) && w != 0; i++ {
		lhs[i], w = bits.Sub64(lhs[i], w, 0)
	}
	return w
}

// Cmp compares a and b as unsigned integers and returns -1, 0 or +1.
//
// The slices may differ in length; the excess limbs of the longer one are
// compared against zero.
func Cmp(a, b []uint64) int {
	if len(a) == len(b) {
		switch len(a) {
		case 0:
			return 0
		case 1:
			return cmp64(a[0], b[0])
		case 2:
			if a[1] != b[1] {
				return cmp64(a[1], b[1])
			}
			return cmp64(a[0], b[0])
		}
	}

	for len(a) > len(b) {
		if a[len(a)-1] != 0 {
			return 1
		}
		a = a[:len(a)-1]
	}
	for len(b) > len(a) {
		if b[len(b)-1] != 0 {
			return -1
		}
		b = b[:len(b)-1]
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return cmp64(a[i], b[i])
		}
	}
	return 0
}

func cmp64(a, b uint64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// IsZero reports whether every limb is zero.
func IsZero(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of limbs in x once the zero high limbs are trimmed.
func Len(x []uint64) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}
