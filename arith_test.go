package wideint

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64[W128](1), u64[W128](2), u64[W128](3), false},
		{u64[W128](10), u64[W128](3), u64[W128](13), false},
		{Max[W128](), u64[W128](1), u64[W128](0), true},                           // Overflow wraps
		{u64[W128](maxUint64), u64[W128](1), uints[W128]("18446744073709551616"), false}, // lo carries to hi
		{uints[W128]("18446744073709551615"), uints[W128]("18446744073709551615"), uints[W128]("36893488147419103230"), false},
		{Max[W128](), Max[W128](), Max[W128]().Dec(), true},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))

			r, overflow := tc.a.OverflowingAdd(tc.b)
			tt.MustEqual(tc.c, r)
			tt.MustEqual(tc.overflow, overflow)

			r, ok := tc.a.CheckedAdd(tc.b)
			tt.MustEqual(!tc.overflow, ok)
			if ok {
				tt.MustEqual(tc.c, r)
			}

			if tc.overflow {
				tt.MustEqual(Max[W128](), tc.a.SaturatingAdd(tc.b))
			} else {
				tt.MustEqual(tc.c, tc.a.SaturatingAdd(tc.b))
			}
		})
	}
}

func TestAddNonAligned(t *testing.T) {
	tt := assert.WrapTB(t)

	// The carry out of bit 64 of a 65-bit value must be reported, not kept.
	a := One[W65]().Lsh(64)
	r, overflow := a.OverflowingAdd(a)
	tt.MustAssert(overflow)
	tt.MustAssert(r.IsZero())
	tt.MustOK(checkMask(r))

	r8, overflow := Max[W8]().OverflowingAdd(One[W8]())
	tt.MustAssert(overflow)
	tt.MustAssert(r8.IsZero())
}

func TestSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c  U128
		overflow bool
	}{
		{u64[W128](3), u64[W128](2), u64[W128](1), false},
		{u64[W128](0), u64[W128](1), Max[W128](), true},
		{uints[W128]("18446744073709551616"), u64[W128](1), u64[W128](maxUint64), false},
		{u64[W128](2), u64[W128](3), Max[W128](), true},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))

			r, overflow := tc.a.OverflowingSub(tc.b)
			tt.MustEqual(tc.c, r)
			tt.MustEqual(tc.overflow, overflow)

			_, ok := tc.a.CheckedSub(tc.b)
			tt.MustEqual(!tc.overflow, ok)

			if tc.overflow {
				tt.MustAssert(tc.a.SaturatingSub(tc.b).IsZero())
			} else {
				tt.MustEqual(tc.c, tc.a.SaturatingSub(tc.b))
			}

			tt.MustEqual(tc.a.AbsDiff(tc.b), tc.b.AbsDiff(tc.a))
		})
	}
}

func TestIncDec(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(Max[W65]().Inc().IsZero())
	tt.MustEqual(Max[W65](), Zero[W65]().Dec())
	tt.MustEqual(One[W128]().Lsh(64), u64[W128](maxUint64).Inc())
	tt.MustEqual(u64[W128](maxUint64), One[W128]().Lsh(64).Dec())
}

func TestNeg(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(Max[W256](), One[W256]().Neg())
	tt.MustAssert(Zero[W256]().Neg().IsZero())

	r, overflow := u64[W256](5).OverflowingNeg()
	tt.MustAssert(overflow)
	tt.MustAssert(r.Add(u64[W256](5)).IsZero())

	_, ok := u64[W256](5).CheckedNeg()
	tt.MustAssert(!ok)

	r, ok = Zero[W256]().CheckedNeg()
	tt.MustAssert(ok)
	tt.MustAssert(r.IsZero())
}

func TestMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b     U128
		overflow bool
	}{
		{u64[W128](1), u64[W128](2), false},
		{u64[W128](maxUint64), u64[W128](maxUint64), false},
		{uints[W128]("0x1 0000000000000000"), uints[W128]("0x1 0000000000000000"), true},
		{Max[W128](), u64[W128](2), true},
		{Max[W128](), u64[W128](1), false},
		{Max[W128](), u64[W128](0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)

			exp := new(big.Int).Mul(tc.a.ToBig(), tc.b.ToBig())
			r, overflow := tc.a.OverflowingMul(tc.b)
			tt.MustEqual(tc.overflow, overflow)
			tt.MustEqual(wrapBig(exp, 128).String(), r.String())

			_, ok := tc.a.CheckedMul(tc.b)
			tt.MustEqual(!tc.overflow, ok)

			if tc.overflow {
				tt.MustEqual(Max[W128](), tc.a.SaturatingMul(tc.b))
			} else {
				tt.MustEqual(r, tc.a.SaturatingMul(tc.b))
			}
		})
	}
}

func TestWideningMul(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		a := accFromBig[W128](randomBig(globalRNG, 128))
		b := accFromBig[W128](randomBig(globalRNG, 128))

		r := WideningMul[W256](a, b)
		exp := new(big.Int).Mul(a.ToBig(), b.ToBig())
		tt.MustEqual(exp.String(), r.String())
	}

	a := Max[W65]()
	b := Max[W64]()
	exp := new(big.Int).Mul(a.ToBig(), b.ToBig())
	tt.MustEqual(exp.String(), WideningMul[W192](a, b).String())

	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	WideningMul[W128](a, b)
}

func TestRingInverse(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := u64[W256](4).RingInverse()
	tt.MustAssert(!ok)
	_, ok = Zero[W0]().RingInverse()
	tt.MustAssert(!ok)

	check := func(u U1024) {
		inv, ok := u.RingInverse()
		tt.MustAssert(ok)
		tt.MustEqual(One[W1024](), u.Mul(inv), "%s", u)
	}
	check(One[W1024]())
	check(Max[W1024]())
	for i := 0; i < 200; i++ {
		u := accFromBig[W1024](randomBig(globalRNG, 1024))
		check(u.SetBit(0, true))
	}

	for i := 0; i < 200; i++ {
		u := accFromBig[W65](randomBig(globalRNG, 65)).SetBit(0, true)
		inv, ok := u.RingInverse()
		tt.MustAssert(ok)
		tt.MustEqual(One[W65](), u.Mul(inv))
	}
}

func TestPow(t *testing.T) {
	for idx, tc := range []struct {
		base, exp U256
		out       string
		overflow  bool
	}{
		{u64[W256](0), u64[W256](0), "1", false},
		{u64[W256](0), u64[W256](5), "0", false},
		{u64[W256](2), u64[W256](255), pow2Big(255).String(), false},
		{u64[W256](2), u64[W256](256), "0", true},
		{u64[W256](1), Max[W256](), "1", false},
		{u64[W256](10), u64[W256](77), "1" + strings.Repeat("0", 77), false},
		{u64[W256](10), u64[W256](78), "", true},
		// The base overflows when squared, but the last squaring is never used.
		{One[W256]().Lsh(128), u64[W256](1), pow2Big(128).String(), false},
		{One[W256]().Lsh(127), u64[W256](2), pow2Big(254).String(), false},
		{One[W256]().Lsh(128), u64[W256](2), "0", true},
	} {
		t.Run(fmt.Sprintf("%d/%s**%s", idx, tc.base, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)

			r, overflow := tc.base.OverflowingPow(tc.exp)
			tt.MustEqual(tc.overflow, overflow)

			exp := new(big.Int).Exp(tc.base.ToBig(), tc.exp.ToBig(), pow2Big(256))
			tt.MustEqual(exp.String(), r.String())
			if tc.out != "" {
				tt.MustEqual(tc.out, r.String())
			}

			_, ok := tc.base.CheckedPow(tc.exp)
			tt.MustEqual(!tc.overflow, ok)
			if tc.overflow {
				tt.MustEqual(Max[W256](), tc.base.SaturatingPow(tc.exp))
			} else {
				tt.MustEqual(r, tc.base.SaturatingPow(tc.exp))
				tt.MustEqual(r, tc.base.Pow(tc.exp))
			}
		})
	}
}

func TestQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64[W128](1), by: u64[W128](2), q: u64[W128](0), r: u64[W128](1)},
		{u: u64[W128](10), by: u64[W128](3), q: u64[W128](3), r: u64[W128](1)},
		{u: Max[W128](), by: u64[W128](3), q: uints[W128]("0x55555555555555555555555555555555"), r: u64[W128](0)},
		{u: Max[W128](), by: Max[W128](), q: u64[W128](1), r: u64[W128](0)},
		{u: u64[W128](5), by: Max[W128](), q: u64[W128](0), r: u64[W128](5)},
		{
			u:  uints[W128]("0x ffff0000000000000000000000000000"),
			by: uints[W128]("0x 1000000000000000000000000000000f"),
			q:  u64[W128](0xf),
			r:  uints[W128]("0x 0ffeffffffffffffffffffffffffff1f"),
		},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)

			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			tt.MustEqual(tc.q, tc.u.Quo(tc.by))
			tt.MustEqual(tc.r, tc.u.Rem(tc.by))

			cq, ok := tc.u.CheckedQuo(tc.by)
			tt.MustAssert(ok)
			tt.MustEqual(tc.q, cq)
			cr, ok := tc.u.CheckedRem(tc.by)
			tt.MustAssert(ok)
			tt.MustEqual(tc.r, cr)
		})
	}
}

func TestQuoRemSingleLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		a := Random[W64](globalRNG)
		b := Random[W64](globalRNG)
		if b.IsZero() {
			continue
		}
		av, _ := a.Uint64()
		bv, _ := b.Uint64()
		q, r := a.QuoRem(b)
		tt.MustEqual(u64[W64](av/bv), q)
		tt.MustEqual(u64[W64](av%bv), r)
	}
}

func TestQuoByZero(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := u64[W256](1).CheckedQuo(Zero[W256]())
	tt.MustAssert(!ok)
	_, ok = u64[W256](1).CheckedRem(Zero[W256]())
	tt.MustAssert(!ok)

	for _, fn := range []func(){
		func() { u64[W256](1).Quo(Zero[W256]()) },
		func() { u64[W64](1).Rem(Zero[W64]()) },
		func() { Zero[W65]().QuoRem(Zero[W65]()) },
	} {
		func() {
			defer func() {
				tt.MustEqual("wideint: division by zero", recover())
			}()
			fn()
		}()
	}
}

func TestQuoCeil(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u64[W128](4), u64[W128](10).QuoCeil(u64[W128](3)))
	tt.MustEqual(u64[W128](3), u64[W128](9).QuoCeil(u64[W128](3)))
	tt.MustEqual(u64[W128](0), u64[W128](0).QuoCeil(u64[W128](3)))
	tt.MustEqual(u64[W128](1), u64[W128](1).QuoCeil(Max[W128]()))
}

func TestQuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 5000; i++ {
		a := randomBig(globalRNG, 512)
		b := randomBig(globalRNG, uint(globalRNG.Intn(512)+1))
		if b.Sign() == 0 {
			continue
		}
		ua, ub := accFromBig[W512](a), accFromBig[W512](b)

		q, r := ua.QuoRem(ub)
		bq, br := new(big.Int).QuoRem(a, b, new(big.Int))
		tt.MustEqual(bq.String(), q.String())
		tt.MustEqual(br.String(), r.String())
	}
}
