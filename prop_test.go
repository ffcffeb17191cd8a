package wideint

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genUint generates values of any width, biased towards limbs that sit on
// the carry and borrow boundaries.
func genUint[W Width]() gopter.Gen {
	limbGen := gen.OneGenOf(
		gen.UInt64(),
		gen.UInt64(),
		gen.OneConstOf(uint64(0), uint64(1), uint64(maxUint64), uint64(1)<<63),
	)
	return gen.SliceOfN(LimbsOf[W](), limbGen).Map(func(x []uint64) Uint[W] {
		u, _ := OverflowingFromLimbsSlice[W](x)
		return u
	})
}

func genNonZero[W Width]() gopter.Gen {
	return genUint[W]().SuchThat(func(u Uint[W]) bool { return !u.IsZero() })
}

func propParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParametersWithSeed(globalRNG.Int63())
	parameters.MinSuccessfulTests = 200
	return parameters
}

func TestProperties(t *testing.T) {
	t.Run("8", func(t *testing.T) { runProperties[W8](t) })
	t.Run("64", func(t *testing.T) { runProperties[W64](t) })
	t.Run("65", func(t *testing.T) { runProperties[W65](t) })
	t.Run("128", func(t *testing.T) { runProperties[W128](t) })
	t.Run("192", func(t *testing.T) { runProperties[W192](t) })
	t.Run("256", func(t *testing.T) { runProperties[W256](t) })
	t.Run("512", func(t *testing.T) { runProperties[W512](t) })
}

func runProperties[W Width](t *testing.T) {
	width := BitsOf[W]()
	properties := gopter.NewProperties(propParameters())

	properties.Property("operations keep the top limb masked", prop.ForAll(
		func(a, b Uint[W], k uint) bool {
			for _, v := range []Uint[W]{
				a.Add(b), a.Sub(b), a.Mul(b), a.Not(), a.Neg(),
				a.Lsh(k), a.RotateLeft(k), a.ReverseBits(), a.ArithmeticRsh(k),
				a.SaturatingAdd(b), a.SaturatingMul(b),
			} {
				if checkMask(v) != nil {
					return false
				}
			}
			return true
		},
		genUint[W](), genUint[W](), gen.UIntRange(0, width+10),
	))

	properties.Property("bytes round trip", prop.ForAll(
		func(a Uint[W]) bool {
			return FromLEBytes[W](a.ToLEBytes()) == a &&
				FromBEBytes[W](a.ToBEBytes()) == a &&
				len(a.ToBEBytes()) == BytesOf[W]() &&
				FromBESlice[W](a.ToBEBytesTrimmed()) == a
		},
		genUint[W](),
	))

	properties.Property("base round trip", prop.ForAll(
		func(a Uint[W], base uint64) bool {
			be, err := FromBaseBE[W](base, a.ToBaseBE(base))
			if err != nil || be != a {
				return false
			}
			var digits []uint64
			it := a.ToBaseLE(base)
			for d, ok := it.Next(); ok; d, ok = it.Next() {
				digits = append(digits, d)
			}
			le, err := FromBaseLE[W](base, digits)
			return err == nil && le == a
		},
		genUint[W](), gen.UInt64Range(2, 64),
	))

	properties.Property("string round trip", prop.ForAll(
		func(a Uint[W]) bool {
			for _, s := range []string{
				a.String(),
				fmt.Sprintf("%#x", a),
				fmt.Sprintf("%#X", a),
				fmt.Sprintf("%#b", a),
				fmt.Sprintf("%O", a),
			} {
				v, err := Parse[W](s)
				if err != nil || v != a {
					return false
				}
			}
			v, err := FromStrRadix[W](a.Text(16), 16)
			return err == nil && v == a && a.String() == a.ToBig().String()
		},
		genUint[W](),
	))

	properties.Property("shift and reverse are dual", prop.ForAll(
		func(a Uint[W], k uint) bool {
			return a.Lsh(k).ReverseBits() == a.ReverseBits().Rsh(k)
		},
		genUint[W](), gen.UIntRange(0, width),
	))

	properties.Property("rotate inverts", prop.ForAll(
		func(a Uint[W], k uint) bool {
			return a.RotateLeft(k).RotateRight(k) == a
		},
		genUint[W](), gen.UIntRange(0, 3*width),
	))

	properties.Property("ring laws", prop.ForAll(
		func(a, b, c Uint[W]) bool {
			one := Uint[W]{}
			if width > 0 {
				one = One[W]()
			}
			return a.Add(b) == b.Add(a) &&
				a.Mul(b) == b.Mul(a) &&
				a.Add(b).Add(c) == a.Add(b.Add(c)) &&
				a.Mul(b).Mul(c) == a.Mul(b.Mul(c)) &&
				a.Mul(b.Add(c)) == a.Mul(b).Add(a.Mul(c)) &&
				a.Add(Uint[W]{}) == a &&
				a.Mul(one) == a &&
				a.Sub(b).Add(b) == a
		},
		genUint[W](), genUint[W](), genUint[W](),
	))

	properties.Property("division", prop.ForAll(
		func(a, d Uint[W]) bool {
			q, r := a.QuoRem(d)
			return q.Mul(d).Add(r) == a && r.LessThan(d)
		},
		genUint[W](), genNonZero[W](),
	))

	properties.Property("ring inverse of odd values", prop.ForAll(
		func(a Uint[W]) bool {
			a = a.SetBit(0, true)
			inv, ok := a.RingInverse()
			return ok && a.Mul(inv) == One[W]()
		},
		genUint[W](),
	))

	properties.Property("modular laws", prop.ForAll(
		func(a, b, c, m Uint[W]) bool {
			if m.Equal(One[W]()) {
				return true
			}
			if a.AddMod(b, m) != b.AddMod(a, m) || a.MulMod(b, m) != b.MulMod(a, m) {
				return false
			}
			if a.AddMod(b, m).AddMod(c, m) != a.AddMod(b.AddMod(c, m), m) {
				return false
			}
			if a.MulMod(b, m).MulMod(c, m) != a.MulMod(b.MulMod(c, m), m) {
				return false
			}
			if a.MulMod(b.AddMod(c, m), m) != a.MulMod(b, m).AddMod(a.MulMod(c, m), m) {
				return false
			}
			if a.MulMod(One[W](), m) != a.ReduceMod(m) || a.AddMod(Uint[W]{}, m) != a.ReduceMod(m) {
				return false
			}
			if a.PowMod(One[W](), m) != a.ReduceMod(m) {
				return false
			}
			if inv, ok := a.InvMod(m); ok {
				return a.MulMod(inv, m) == One[W]()
			}
			return !a.Gcd(m).Equal(One[W]())
		},
		genUint[W](), genUint[W](), genUint[W](), genNonZero[W](),
	))

	properties.Property("montgomery product", prop.ForAll(
		func(a, b, m Uint[W]) bool {
			m = m.SetBit(0, true)
			if m.Equal(One[W]()) {
				return true
			}
			inv, ok := MontgomeryInv(m)
			if !ok {
				return false
			}
			mb := m.ToBig()
			r := pow2Big(uint(64 * LimbsOf[W]()))
			toMont := func(v Uint[W]) Uint[W] {
				x := new(big.Int).Mul(v.ToBig(), r)
				return accFromBig[W](x.Mod(x, mb))
			}
			exp := new(big.Int).Mul(a.ToBig(), b.ToBig())
			exp.Mul(exp, r).Mod(exp, mb)
			return toMont(a).MulRedc(toMont(b), m, inv).ToBig().Cmp(exp) == 0
		},
		genUint[W](), genUint[W](), genUint[W](),
	))

	properties.Property("root bounds", prop.ForAll(
		func(a Uint[W], degree uint) bool {
			r := a.Root(degree).ToBig()
			ab, deg := a.ToBig(), big.NewInt(int64(degree))
			lo := new(big.Int).Exp(r, deg, nil)
			hi := new(big.Int).Exp(new(big.Int).Add(r, big1), deg, nil)
			return lo.Cmp(ab) <= 0 && hi.Cmp(ab) > 0
		},
		genUint[W](), gen.UIntRange(1, 12),
	))

	properties.Property("log bounds", prop.ForAll(
		func(n, b Uint[W]) bool {
			if b.LessThan(WrappingFrom64[W](2)) {
				b = b.SetBit(1, true)
			}
			l := n.Log(b)
			nb, bb := n.ToBig(), b.ToBig()
			lo := new(big.Int).Exp(bb, big.NewInt(int64(l)), nil)
			hi := new(big.Int).Exp(bb, big.NewInt(int64(l)+1), nil)
			return lo.Cmp(nb) <= 0 && hi.Cmp(nb) > 0
		},
		genNonZero[W](), genUint[W](),
	))

	properties.TestingRun(t)
}
