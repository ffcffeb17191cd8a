package wideint

import (
	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// ReduceMod returns u mod m, or 0 if m is 0.
func (u Uint[W]) ReduceMod(m Uint[W]) Uint[W] {
	if m.IsZero() {
		return Uint[W]{}
	}
	if u.GreaterOrEqualTo(m) {
		return u.Rem(m)
	}
	return u
}

// AddMod returns (u + n) mod m, or 0 if m is 0. The intermediate sum does
// not wrap.
func (u Uint[W]) AddMod(n, m Uint[W]) Uint[W] {
	if m.IsZero() {
		return Uint[W]{}
	}
	a, b := u.ReduceMod(m), n.ReduceMod(m)
	sum, overflow := a.OverflowingAdd(b)
	if overflow || sum.GreaterOrEqualTo(m) {
		sum = sum.Sub(m)
	}
	return sum
}

// SubMod returns (u - n) mod m, or 0 if m is 0.
func (u Uint[W]) SubMod(n, m Uint[W]) Uint[W] {
	if m.IsZero() {
		return Uint[W]{}
	}
	a, b := u.ReduceMod(m), n.ReduceMod(m)
	diff, borrow := a.OverflowingSub(b)
	if borrow {
		diff = diff.Add(m)
	}
	return diff
}

// NegMod returns -u mod m, or 0 if m is 0.
func (u Uint[W]) NegMod(m Uint[W]) Uint[W] {
	if m.IsZero() {
		return Uint[W]{}
	}
	r := u.ReduceMod(m)
	if r.IsZero() {
		return r
	}
	return m.Sub(r)
}

// MulMod returns (u * n) mod m computed over the full double-width product,
// or 0 if m is 0. It allocates a buffer twice the width of W.
func (u Uint[W]) MulMod(n, m Uint[W]) (r Uint[W]) {
	if m.IsZero() {
		return r
	}
	nl := len(u.limbs)
	buf := make([]uint64, 4*nl)
	product, quo := buf[:2*nl], buf[2*nl:]
	limb.AddMul(product, u.words(), n.words())
	limb.DivRem(quo, r.words(), product, m.words())
	return r
}

// PowMod returns u^exp mod m by repeated squaring. It returns 0 when m is
// 0 or 1.
func (u Uint[W]) PowMod(exp, m Uint[W]) Uint[W] {
	if layoutOf[W]().bits == 0 || m.LessOrEqualTo(One[W]()) {
		return Uint[W]{}
	}

	base := u.ReduceMod(m)
	result := One[W]()
	for !exp.IsZero() {
		if exp.words()[0]&1 == 1 {
			result = result.MulMod(base, m)
		}
		base = base.MulMod(base, m)
		exp = exp.Rsh(1)
	}
	return result
}

// MontgomeryInv returns -m^-1 mod 2^64, the constant required by MulRedc and
// SquareRedc. It reports false if m is even.
func MontgomeryInv[W Width](m Uint[W]) (inv uint64, ok bool) {
	x := m.words()
	if len(x) == 0 || x[0]&1 == 0 {
		return 0, false
	}
	n := x[0]
	inv = (n * 3) ^ 2
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	inv *= 2 - n*inv
	return -inv, true
}

// MulRedc computes u * n * R^-1 mod m where R = 2^(64*LimbsOf[W]()), the
// Montgomery product. u and n must already be reduced modulo m, m must be
// odd and inv must be MontgomeryInv(m).
func (u Uint[W]) MulRedc(n, m Uint[W], inv uint64) (out Uint[W]) {
	if len(u.limbs) == 0 {
		return out
	}
	limb.MulRedc(out.words(), u.words(), n.words(), m.words(), inv)
	return out
}

// SquareRedc computes u * u * R^-1 mod m. See MulRedc.
func (u Uint[W]) SquareRedc(m Uint[W], inv uint64) (out Uint[W]) {
	if len(u.limbs) == 0 {
		return out
	}
	limb.SquareRedc(out.words(), u.words(), m.words(), inv)
	return out
}
