package wideint

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchBytesResult  []byte
	BenchFloatResult  float64
	BenchIntResult    int
	BenchStringResult string
	BenchU128Result   U128
	BenchU256Result   U256
	BenchU1024Result  U1024
	BenchUint64Result uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	u := Max[W256]().ToBig()
	var dest big.Int
	for i := 0; i < b.N; i++ {
		dest.Mul(u, u)
	}
}

func BenchmarkBigIntQuoRem(b *testing.B) {
	u := Max[W256]().ToBig()
	v := bigs("0xffffffffffffffffffffffffffffff")
	var q, r big.Int
	for i := 0; i < b.N; i++ {
		q.QuoRem(u, v, &r)
	}
}

func BenchmarkU256Add(b *testing.B) {
	u := u64[W256](maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Add(u)
	}
}

func BenchmarkU256Mul(b *testing.B) {
	u := Max[W256]().Rsh(1)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Mul(u)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	u := u64[W128](maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Mul(u)
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		u, n := Max[W256](), Max[W256]()
		for i := 0; i < b.N; i++ {
			BenchIntResult = u.Cmp(n)
		}
	})
	b.Run("lt", func(b *testing.B) {
		u, n := Max[W256]().Dec(), Max[W256]()
		for i := 0; i < b.N; i++ {
			BenchIntResult = u.Cmp(n)
		}
	})
}

func BenchmarkU256Lsh(b *testing.B) {
	for _, sh := range []uint{1, 8, 64, 127, 200, 255} {
		b.Run(fmt.Sprintf("%d", sh), func(b *testing.B) {
			u := Max[W256]()
			for i := 0; i < b.N; i++ {
				BenchU256Result = u.Lsh(sh)
			}
		})
	}
}

var benchQuoCases = []struct {
	name     string
	dividend U256
	divisor  U256
}{
	{"256/64", Max[W256](), u64[W256](0x0123456789abcdef)},
	{"256/128", Max[W256](), uints[W256]("0xffffffffffffffffffffffffffffff")},
	{"256/192", Max[W256](), uints[W256]("0x8000000000000000 0000000000000000 0000000000000001")},
	{"256/256", Max[W256](), Max[W256]().Rsh(3)},
	{"128/64", uints[W256]("0xffffffffffffffff ffffffffffffffff"), u64[W256](3)},
}

func BenchmarkU256QuoRem(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result, _ = bc.dividend.QuoRem(bc.divisor)
			}
		})
	}
}

func BenchmarkU1024QuoRem(b *testing.B) {
	u := Max[W1024]()
	v := Max[W1024]().Rsh(400)
	for i := 0; i < b.N; i++ {
		BenchU1024Result, _ = u.QuoRem(v)
	}
}

func BenchmarkU256MulMod(b *testing.B) {
	u := Max[W256]().Dec()
	m := Max[W256]().Rsh(1)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.MulMod(u, m)
	}
}

func BenchmarkU256PowMod(b *testing.B) {
	u := u64[W256](3)
	e := Max[W256]().Rsh(1)
	m := Max[W256]().Rsh(2)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.PowMod(e, m)
	}
}

func BenchmarkU256MulRedc(b *testing.B) {
	m := Max[W256]().Rsh(2)
	inv, _ := MontgomeryInv(m)
	u := m.Rsh(3)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.MulRedc(u, m, inv)
	}
}

func BenchmarkU256Gcd(b *testing.B) {
	u := uints[W256]("0xc85ef7d79691fe79573b1a7064c19c1a9819ebdbd1faaab1a8ec92344438aaf4")
	v := uints[W256]("0x9819ebdbd1faaab1a8ec92344438aaf4573b1a7064c19c1a")
	b.Run("wideint", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchU256Result = u.Gcd(v)
		}
	})
	b.Run("big", func(b *testing.B) {
		ub, vb := u.ToBig(), v.ToBig()
		var g big.Int
		for i := 0; i < b.N; i++ {
			g.GCD(nil, nil, ub, vb)
		}
	})
}

func BenchmarkU256InvMod(b *testing.B) {
	u := uints[W256]("0xc85ef7d79691fe79573b1a7064c19c1a9819ebdbd1faaab1a8ec92344438aaf4")
	m := uints[W256]("0xffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	for i := 0; i < b.N; i++ {
		BenchU256Result, BenchBoolResult = u.InvMod(m)
	}
}

func BenchmarkU256Sqrt(b *testing.B) {
	u := Max[W256]().Rsh(7)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u.Sqrt()
	}
}

func BenchmarkU256String(b *testing.B) {
	u := Max[W256]()
	b.Run("wideint", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchStringResult = u.String()
		}
	})
	b.Run("big", func(b *testing.B) {
		ub := u.ToBig()
		for i := 0; i < b.N; i++ {
			BenchStringResult = ub.String()
		}
	})
}

func BenchmarkU256Parse(b *testing.B) {
	s := Max[W256]().String()
	for i := 0; i < b.N; i++ {
		BenchU256Result, _ = Parse[W256](s)
	}
}

func BenchmarkU256Float64(b *testing.B) {
	u := Max[W256]().Rsh(13)
	for i := 0; i < b.N; i++ {
		BenchFloatResult = u.Float64()
	}
}

func BenchmarkU256ToBig(b *testing.B) {
	u := Max[W256]()
	b.Run("alloc", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchBigIntResult = u.ToBig()
		}
	})
	b.Run("into", func(b *testing.B) {
		var dest big.Int
		for i := 0; i < b.N; i++ {
			u.IntoBig(&dest)
		}
	})
}

func BenchmarkU256RLP(b *testing.B) {
	u := Max[W256]().Rsh(40)
	for i := 0; i < b.N; i++ {
		BenchBytesResult = u.RLPBytes()
	}
}
