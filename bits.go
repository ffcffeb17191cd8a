package wideint

import (
	"math/bits"

	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// Bit reports whether bit i is set. Bits beyond the width read as unset.
func (u Uint[W]) Bit(i uint) bool {
	if i >= layoutOf[W]().bits {
		return false
	}
	return u.words()[i/64]&(1<<(i%64)) != 0
}

// SetBit returns u with bit i set to v. Indexes beyond the width are ignored.
func (u Uint[W]) SetBit(i uint, v bool) Uint[W] {
	if i >= layoutOf[W]().bits {
		return u
	}
	x := u.words()
	if v {
		x[i/64] |= 1 << (i % 64)
	} else {
		x[i/64] &^= 1 << (i % 64)
	}
	return u
}

// Byte returns byte i of u, where byte 0 is the least significant. It panics
// if i is not below BytesOf[W]().
func (u Uint[W]) Byte(i int) uint8 {
	if i < 0 || i >= layoutOf[W]().bytes {
		panic("wideint: byte index out of range")
	}
	return uint8(u.words()[i/8] >> (8 * (i % 8)))
}

// BitLen returns the number of bits required to represent u; 0 for 0.
func (u Uint[W]) BitLen() uint {
	return layoutOf[W]().bits - u.LeadingZeros()
}

// ByteLen returns the number of bytes required to represent u; 0 for 0.
func (u Uint[W]) ByteLen() int {
	return int(u.BitLen()+7) / 8
}

func (u Uint[W]) LeadingZeros() uint {
	l := layoutOf[W]()
	x := u.words()
	padding := uint(64*l.limbs) - l.bits
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			skipped := uint(len(x)-1-i) * 64
			return skipped + uint(bits.LeadingZeros64(x[i])) - padding
		}
	}
	return l.bits
}

func (u Uint[W]) LeadingOnes() uint {
	return u.Not().LeadingZeros()
}

func (u Uint[W]) TrailingZeros() uint {
	x := u.words()
	for i, w := range x {
		if w != 0 {
			return uint(i)*64 + uint(bits.TrailingZeros64(w))
		}
	}
	return layoutOf[W]().bits
}

func (u Uint[W]) TrailingOnes() uint {
	return u.Not().TrailingZeros()
}

func (u Uint[W]) CountOnes() (n uint) {
	for _, w := range u.words() {
		n += uint(bits.OnesCount64(w))
	}
	return n
}

func (u Uint[W]) CountZeros() uint {
	return layoutOf[W]().bits - u.CountOnes()
}

func (u Uint[W]) IsPowerOfTwo() bool {
	return u.CountOnes() == 1
}

// CheckedNextPowerOfTwo returns the smallest power of two greater than or
// equal to u, or false if it does not fit.
func (u Uint[W]) CheckedNextPowerOfTwo() (Uint[W], bool) {
	if u.IsPowerOfTwo() {
		return u, true
	}
	exp := u.BitLen()
	if exp >= layoutOf[W]().bits {
		return Uint[W]{}, false
	}
	return Uint[W]{}.SetBit(exp, true), true
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to
// u. It panics if the result does not fit.
func (u Uint[W]) NextPowerOfTwo() Uint[W] {
	v, ok := u.CheckedNextPowerOfTwo()
	if !ok {
		panic("wideint: next power of two overflows")
	}
	return v
}

// MostSignificantBits returns the 64 bits starting at the highest set bit of
// u, and the exponent such that u ~= bits * 2^exponent. For values that fit
// in 64 bits the exponent is 0 and the bits are the value itself.
func (u Uint[W]) MostSignificantBits() (top uint64, exponent uint) {
	x := u.words()
	n := limb.Len(x)
	if n <= 1 {
		if len(x) == 0 {
			return 0, 0
		}
		return x[0], 0
	}
	hi, lo := x[n-1], x[n-2]
	lz := uint(bits.LeadingZeros64(hi))
	top = hi<<lz | lo>>(64-lz)
	return top, uint(n-1)*64 - lz
}

func (u Uint[W]) Not() Uint[W] {
	x := u.words()
	for i := range x {
		x[i] = ^x[i]
	}
	u.masked()
	return u
}

func (u Uint[W]) And(n Uint[W]) Uint[W] {
	x, y := u.words(), n.words()
	for i := range x {
		x[i] &= y[i]
	}
	return u
}

func (u Uint[W]) Or(n Uint[W]) Uint[W] {
	x, y := u.words(), n.words()
	for i := range x {
		x[i] |= y[i]
	}
	return u
}

func (u Uint[W]) Xor(n Uint[W]) Uint[W] {
	x, y := u.words(), n.words()
	for i := range x {
		x[i] ^= y[i]
	}
	return u
}

func (u Uint[W]) AndNot(n Uint[W]) Uint[W] {
	x, y := u.words(), n.words()
	for i := range x {
		x[i] &^= y[i]
	}
	return u
}

// ReverseBits returns u with the order of its BITS bits reversed.
func (u Uint[W]) ReverseBits() Uint[W] {
	l := layoutOf[W]()
	x := u.words()
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
	for i := range x {
		x[i] = bits.Reverse64(x[i])
	}
	if gap := uint(64*l.limbs) - l.bits; gap > 0 {
		limb.Shr(x, x, gap)
	}
	return u
}

// Lsh returns u << n, discarding bits shifted beyond the width. Shifts of
// BITS or more return 0.
func (u Uint[W]) Lsh(n uint) Uint[W] {
	if n >= layoutOf[W]().bits {
		return Uint[W]{}
	}
	x := u.words()
	limb.Shl(x, x, n)
	u.masked()
	return u
}

// Rsh returns u >> n. Shifts of BITS or more return 0.
func (u Uint[W]) Rsh(n uint) Uint[W] {
	if n >= layoutOf[W]().bits {
		return Uint[W]{}
	}
	x := u.words()
	limb.Shr(x, x, n)
	return u
}

// OverflowingLsh returns u << n and reports whether any non-zero bits were
// shifted out.
func (u Uint[W]) OverflowingLsh(n uint) (Uint[W], bool) {
	if n >= layoutOf[W]().bits {
		return Uint[W]{}, !u.IsZero()
	}
	v := u.Lsh(n)
	return v, v.Rsh(n) != u
}

// OverflowingRsh returns u >> n and reports whether any non-zero bits were
// shifted out, i.e. whether the division by 2^n was inexact.
func (u Uint[W]) OverflowingRsh(n uint) (Uint[W], bool) {
	inexact := !u.IsZero() && u.TrailingZeros() < n
	return u.Rsh(n), inexact
}

func (u Uint[W]) CheckedLsh(n uint) (Uint[W], bool) {
	v, overflow := u.OverflowingLsh(n)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

func (u Uint[W]) CheckedRsh(n uint) (Uint[W], bool) {
	v, overflow := u.OverflowingRsh(n)
	if overflow {
		return Uint[W]{}, false
	}
	return v, true
}

// SaturatingLsh returns u << n, or Max if any bits were shifted out.
func (u Uint[W]) SaturatingLsh(n uint) Uint[W] {
	v, overflow := u.OverflowingLsh(n)
	if overflow {
		return Max[W]()
	}
	return v
}

// ArithmeticRsh shifts u right by n, filling the vacated high bits with
// copies of bit BITS-1.
func (u Uint[W]) ArithmeticRsh(n uint) Uint[W] {
	width := layoutOf[W]().bits
	if width == 0 {
		return u
	}
	negative := u.Bit(width - 1)
	r := u.Rsh(n)
	if negative {
		fill := uint(0)
		if n < width {
			fill = width - n
		}
		r = r.Or(Max[W]().Lsh(fill))
	}
	return r
}

// shiftAmount converts n to a shift count, clamping values that can not be
// a valid shift to BITS.
func shiftAmount[W Width](n Uint[W]) uint {
	width := layoutOf[W]().bits
	v, ok := n.Uint64()
	if !ok || v > uint64(width) {
		return width
	}
	return uint(v)
}

// LshUint is Lsh with the shift amount given as a Uint.
func (u Uint[W]) LshUint(n Uint[W]) Uint[W] { return u.Lsh(shiftAmount(n)) }

// RshUint is Rsh with the shift amount given as a Uint.
func (u Uint[W]) RshUint(n Uint[W]) Uint[W] { return u.Rsh(shiftAmount(n)) }

// RotateLeft rotates u left by k mod BITS bits.
func (u Uint[W]) RotateLeft(k uint) Uint[W] {
	width := layoutOf[W]().bits
	if width == 0 {
		return u
	}
	k %= width
	return u.Lsh(k).Or(u.Rsh(width - k))
}

// RotateRight rotates u right by k mod BITS bits.
func (u Uint[W]) RotateRight(k uint) Uint[W] {
	width := layoutOf[W]().bits
	if width == 0 {
		return u
	}
	k %= width
	return u.Rsh(k).Or(u.Lsh(width - k))
}
