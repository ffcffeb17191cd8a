package wideint

import (
	"math/bits"

	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// DigitsLE yields the digits of a value in some base, least significant
// first. It is created by Uint.ToBaseLE and can be consumed only once.
type DigitsLE[W Width] struct {
	n    Uint[W]
	size int
	base uint64
}

// ToBaseLE returns an iterator over the digits of u in the given base, least
// significant first. Zero has no digits. It panics if base < 2.
//
// Passing a power of the intended base (for example 10^19) extracts several
// digits per step.
func (u Uint[W]) ToBaseLE(base uint64) DigitsLE[W] {
	if base < 2 {
		panic("wideint: base must be at least 2")
	}
	return DigitsLE[W]{n: u, size: limb.Len(u.words()), base: base}
}

// Next returns the next digit, or false once the value is exhausted.
func (d *DigitsLE[W]) Next() (digit uint64, ok bool) {
	if d.size == 0 {
		return 0, false
	}
	x := d.n.words()[:d.size]
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		x[i], rem = bits.Div64(rem, x[i], d.base)
	}
	d.size = limb.Len(x)
	return rem, true
}

// ToBaseBE returns the digits of u in the given base, most significant
// first. Zero has no digits. It panics if base < 2.
func (u Uint[W]) ToBaseBE(base uint64) []uint64 {
	var digits []uint64
	it := u.ToBaseLE(base)
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		digits = append(digits, d)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// DigitsBE yields the digits of a value in some base, most significant
// first, without allocating. It is created by Uint.ToBaseBE2.
type DigitsBE[W Width] struct {
	n     Uint[W]
	power Uint[W]

	// base is zero when the base does not fit in the width, in which case
	// the value is a single digit.
	base Uint[W]
}

// ToBaseBE2 returns an allocation-free iterator over the digits of u in the
// given base, most significant first. Zero has no digits. It panics if
// base < 2.
//
// The iterator divides by successively smaller powers of the base, so it is
// slower than ToBaseBE for wide values.
func (u Uint[W]) ToBaseBE2(base uint64) DigitsBE[W] {
	if base < 2 {
		panic("wideint: base must be at least 2")
	}
	if u.IsZero() {
		return DigitsBE[W]{}
	}
	b, err := TryFrom64[W](base)
	if err != nil {
		return DigitsBE[W]{n: u, power: One[W]()}
	}

	// Largest power of the base not exceeding u.
	power := One[W]()
	for {
		next, overflow := power.OverflowingMul(b)
		if overflow || next.GreaterThan(u) {
			break
		}
		power = next
	}
	return DigitsBE[W]{n: u, power: power, base: b}
}

// Next returns the next digit, or false once every digit has been produced.
func (d *DigitsBE[W]) Next() (digit uint64, ok bool) {
	if d.power.IsZero() {
		return 0, false
	}
	q, r := d.n.QuoRem(d.power)
	d.n = r
	if d.base.IsZero() {
		d.power = Uint[W]{}
	} else {
		d.power = d.power.Quo(d.base)
	}
	digit, _ = q.Uint64()
	return digit, true
}

// FromBaseBE builds a Uint from its digits in the given base, most
// significant first.
//
// It returns an *InvalidBaseError for base < 2, an *InvalidDigitError for a
// digit not below base and an *OverflowError if the value does not fit. The
// first error encountered in digit order is returned.
func FromBaseBE[W Width](base uint64, digits []uint64) (u Uint[W], err error) {
	if base < 2 {
		return u, &InvalidBaseError{Base: base}
	}
	for _, d := range digits {
		if d >= base {
			return Uint[W]{}, &InvalidDigitError{Digit: d, Base: base}
		}
		if !u.mulAddSmall(base, d) {
			return Uint[W]{}, overflowError[W]()
		}
	}
	return u, nil
}

// mulAddSmall sets u to u*m + a, reporting false if the result does not fit.
func (u *Uint[W]) mulAddSmall(m, a uint64) bool {
	x := u.words()
	carry := limb.MulNx1(x, m)
	carry += limb.AddW(x, a)
	return carry == 0 && !u.masked()
}

// FromBaseLE builds a Uint from its digits in the given base, least
// significant first. Errors are as for FromBaseBE.
//
// Once the running power of the base exceeds the width any further non-zero
// digit is an overflow, but zero digits are still accepted, so trailing zero
// digits never cause an error.
func FromBaseLE[W Width](base uint64, digits []uint64) (u Uint[W], err error) {
	if base < 2 {
		return u, &InvalidBaseError{Base: base}
	}
	b := WrappingFrom64[W](base)
	baseFits := uint(bits.Len64(base)) <= layoutOf[W]().bits

	var power Uint[W]
	powerOK := layoutOf[W]().bits > 0
	if powerOK {
		power = One[W]()
	}

	for _, d := range digits {
		if d >= base {
			return Uint[W]{}, &InvalidDigitError{Digit: d, Base: base}
		}
		if d == 0 {
			if powerOK {
				power, powerOK = advancePower(power, b, baseFits)
			}
			continue
		}
		if !powerOK {
			return Uint[W]{}, overflowError[W]()
		}
		dv, derr := TryFrom64[W](d)
		if derr != nil {
			return Uint[W]{}, overflowError[W]()
		}
		term, overflow := dv.OverflowingMul(power)
		if overflow {
			return Uint[W]{}, overflowError[W]()
		}
		u, overflow = u.OverflowingAdd(term)
		if overflow {
			return Uint[W]{}, overflowError[W]()
		}
		power, powerOK = advancePower(power, b, baseFits)
	}
	return u, nil
}

func advancePower[W Width](power, base Uint[W], baseFits bool) (Uint[W], bool) {
	if !baseFits {
		return Uint[W]{}, false
	}
	next, overflow := power.OverflowingMul(base)
	return next, !overflow
}
