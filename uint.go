package wideint

import (
	"unsafe"

	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// Uint is an unsigned integer of the fixed width described by W. Arithmetic
// wraps modulo 2^BITS unless one of the Overflowing, Checked or Saturating
// variants is used.
//
// Uint is a value type: all operations return new values, and two values are
// equal exactly when == reports them equal.
type Uint[W Width] struct {
	limbs W
}

// words exposes the limbs as a slice aliasing u.
func (u *Uint[W]) words() []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&u.limbs)), len(u.limbs))
}

// masked clears the bits above BITS in the most significant limb and
// reports whether any were set.
func (u *Uint[W]) masked() (overflow bool) {
	l := layoutOf[W]()
	if l.limbs == 0 {
		return false
	}
	x := u.words()
	top := x[l.limbs-1]
	x[l.limbs-1] = top & l.mask
	return top&^l.mask != 0
}

// FromLimbs creates a Uint from its little-endian limbs. It panics if the
// most significant limb has bits set above BITS.
func FromLimbs[W Width](limbs W) Uint[W] {
	u := Uint[W]{limbs: limbs}
	if u.masked() {
		panic("wideint: limbs exceed width")
	}
	return u
}

// FromLimbsSlice creates a Uint from a little-endian limb slice of any
// length. It panics if the value does not fit.
func FromLimbsSlice[W Width](limbs []uint64) Uint[W] {
	u, overflow := OverflowingFromLimbsSlice[W](limbs)
	if overflow {
		panic("wideint: limbs exceed width")
	}
	return u
}

// OverflowingFromLimbsSlice creates a Uint from a little-endian limb slice,
// truncating to BITS and reporting whether any non-zero bits were dropped.
func OverflowingFromLimbsSlice[W Width](limbs []uint64) (u Uint[W], overflow bool) {
	x := u.words()
	n := copy(x, limbs)
	overflow = !limb.IsZero(limbs[n:])
	if u.masked() {
		overflow = true
	}
	return u, overflow
}

// From64 creates a Uint from a uint64. It panics if v does not fit in BITS.
func From64[W Width](v uint64) Uint[W] {
	u, err := TryFrom64[W](v)
	if err != nil {
		panic(err)
	}
	return u
}

// TryFrom64 creates a Uint from a uint64, returning an *OverflowError if v
// does not fit in BITS.
func TryFrom64[W Width](v uint64) (u Uint[W], err error) {
	u, overflow := OverflowingFromLimbsSlice[W]([]uint64{v})
	if overflow {
		return Uint[W]{}, overflowError[W]()
	}
	return u, nil
}

// TryFromInt64 creates a Uint from an int64. Negative values fail with
// ErrValueNegative.
func TryFromInt64[W Width](v int64) (u Uint[W], err error) {
	if v < 0 {
		return u, ErrValueNegative
	}
	return TryFrom64[W](uint64(v))
}

// WrappingFrom64 creates a Uint from v modulo 2^BITS.
func WrappingFrom64[W Width](v uint64) Uint[W] {
	u, _ := OverflowingFromLimbsSlice[W]([]uint64{v})
	return u
}

// Random generates a uniformly distributed Uint from an external source.
func Random[W Width](source RandSource) (u Uint[W]) {
	x := u.words()
	for i := range x {
		x[i] = source.Uint64()
	}
	u.masked()
	return u
}

// Limbs returns the little-endian limbs of u.
func (u Uint[W]) Limbs() W { return u.limbs }

// Uint64 returns the low 64 bits of u and reports whether u fits in a uint64.
func (u Uint[W]) Uint64() (v uint64, ok bool) {
	x := u.words()
	if len(x) == 0 {
		return 0, true
	}
	return x[0], limb.IsZero(x[1:])
}

// IsZero reports whether u is 0.
func (u Uint[W]) IsZero() bool { return u == Uint[W]{} }

// Cmp compares u and n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u Uint[W]) Cmp(n Uint[W]) int {
	return limb.Cmp(u.words(), n.words())
}

func (u Uint[W]) Equal(n Uint[W]) bool            { return u == n }
func (u Uint[W]) GreaterThan(n Uint[W]) bool      { return u.Cmp(n) > 0 }
func (u Uint[W]) GreaterOrEqualTo(n Uint[W]) bool { return u.Cmp(n) >= 0 }
func (u Uint[W]) LessThan(n Uint[W]) bool         { return u.Cmp(n) < 0 }
func (u Uint[W]) LessOrEqualTo(n Uint[W]) bool    { return u.Cmp(n) <= 0 }

// Resize converts u to the width WR, discarding any bits above the new
// width.
func Resize[WR, W Width](u Uint[W]) Uint[WR] {
	out, _ := OverflowingFromLimbsSlice[WR](u.words())
	return out
}

// CheckedResize converts u to the width WR, reporting false if u does not
// fit.
func CheckedResize[WR, W Width](u Uint[W]) (out Uint[WR], ok bool) {
	out, overflow := OverflowingFromLimbsSlice[WR](u.words())
	if overflow {
		return Uint[WR]{}, false
	}
	return out, true
}
