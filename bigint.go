package wideint

import (
	"math/big"
)

const intSize = 32 << (^uint(0) >> 63)

// ToBig returns u as a new *big.Int.
func (u Uint[W]) ToBig() *big.Int {
	var b big.Int
	u.IntoBig(&b)
	return &b
}

// IntoBig stores u in b, reusing b's storage where possible.
func (u Uint[W]) IntoBig(b *big.Int) {
	x := u.words()
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < len(x) {
			words = make([]big.Word, len(x))
		}
		words = words[:len(x)]
		for i, w := range x {
			words[i] = big.Word(w)
		}
		b.SetBits(words)

	default:
		b.SetBytes(u.ToBEBytes())
	}
}

// FromBig creates a Uint from a *big.Int. It fails with ErrValueNegative for
// negative values and an *OverflowError if v needs more than BITS bits.
func FromBig[W Width](v *big.Int) (u Uint[W], err error) {
	if v.Sign() < 0 {
		return u, ErrValueNegative
	}
	l := layoutOf[W]()
	if uint(v.BitLen()) > l.bits {
		return u, overflowError[W]()
	}
	buf := make([]byte, l.bytes)
	v.FillBytes(buf)
	u, _ = TryFromBESlice[W](buf)
	return u, nil
}

// MustFromBig is FromBig, panicking on error.
func MustFromBig[W Width](v *big.Int) Uint[W] {
	u, err := FromBig[W](v)
	if err != nil {
		panic(err)
	}
	return u
}
