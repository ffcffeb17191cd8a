package wideint

import (
	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// QuoRem returns the quotient q and remainder r for n != 0. If n == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements truncated division, which for unsigned values is also
// Euclidean division:
//
//	q = u/n      rounded towards zero
//	r = u - n*q
func (u Uint[W]) QuoRem(n Uint[W]) (q, r Uint[W]) {
	x, d := u.words(), n.words()
	if limb.IsZero(d) {
		panic("wideint: division by zero")
	}

	// Single limb values skip the reciprocal machinery.
	if len(x) == 1 {
		q.words()[0], r.words()[0] = x[0]/d[0], x[0]%d[0]
		return q, r
	}

	limb.DivRem(q.words(), r.words(), x, d)
	return q, r
}

// Quo returns the quotient u/n for n != 0. If n == 0, a division-by-zero
// run-time panic occurs.
func (u Uint[W]) Quo(n Uint[W]) Uint[W] {
	q, _ := u.QuoRem(n)
	return q
}

// Rem returns the remainder of u%n for n != 0. If n == 0, a division-by-zero
// run-time panic occurs.
func (u Uint[W]) Rem(n Uint[W]) Uint[W] {
	_, r := u.QuoRem(n)
	return r
}

// QuoCeil returns u/n rounded towards positive infinity.
func (u Uint[W]) QuoCeil(n Uint[W]) Uint[W] {
	q, r := u.QuoRem(n)
	if !r.IsZero() {
		q = q.Inc()
	}
	return q
}

// CheckedQuo returns u/n, or false if n is zero.
func (u Uint[W]) CheckedQuo(n Uint[W]) (Uint[W], bool) {
	if n.IsZero() {
		return Uint[W]{}, false
	}
	return u.Quo(n), true
}

// CheckedRem returns u%n, or false if n is zero.
func (u Uint[W]) CheckedRem(n Uint[W]) (Uint[W], bool) {
	if n.IsZero() {
		return Uint[W]{}, false
	}
	return u.Rem(n), true
}
