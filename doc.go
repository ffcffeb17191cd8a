/*
Package wideint provides fixed-width unsigned integers of any width from 0 to
4096 bits, implementing most of the big.Int API without allocating.

The width is part of the type. Predefined aliases cover the common widths
(U64, U128, U256, U512, ...), and any other width can be declared with a
marker type whose array length is the number of 64-bit limbs:

	type W96 [2]uint64

	func (W96) Bits() uint { return 96 }

	type U96 = wideint.Uint[W96]

Uint values are value types; all operations return new values. Arithmetic
wraps modulo 2^BITS. Every operation that can overflow also comes in
Overflowing, Checked and Saturating flavours:

	a := wideint.MustParse[wideint.W256]("0xffffffffffffffffffffffffffffffff")
	b := wideint.From64[wideint.W256](3)
	fmt.Println(a.Mul(b))
	// Output: 1020847100762815390390123822295304634365

Values can be created from a variety of sources:

	FromLimbs[W](limbs W) Uint[W]
	From64[W](v uint64) Uint[W]
	TryFromInt64[W](v int64) (Uint[W], error)
	FromBig[W](v *big.Int) (Uint[W], error)
	TryFromFloat64[W](f float64) (Uint[W], error)
	FromStrRadix[W](s string, radix uint64) (Uint[W], error)
	Parse[W](s string) (Uint[W], error)
	FromBEBytes[W](b []byte) Uint[W]
	FromBaseBE[W](base uint64, digits []uint64) (Uint[W], error)
	Random[W](source RandSource) Uint[W]

Beyond the usual arithmetic, Uint implements modular arithmetic (including
Montgomery multiplication), extended GCD, integer roots and logarithms, and
conversion to and from arbitrary bases.

Bits[W] restricts a value to bitwise operations, and Int[W] reinterprets it
as a two's complement signed integer.

Uint supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
*/
package wideint
