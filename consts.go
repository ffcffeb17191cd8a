package wideint

import (
	"fmt"
	"math"
)

// Width constrains the type parameter of Uint, Bits and Int. A width is a
// named array of 64-bit limbs whose Bits method reports the bit width; the
// array length must be ceil(Bits()/64).
//
// Custom widths can be declared the same way as the predefined ones:
//
//	type W96 [2]uint64
//
//	func (W96) Bits() uint { return 96 }
type Width interface {
	~[0]uint64 | ~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 |
		~[5]uint64 | ~[6]uint64 | ~[7]uint64 | ~[8]uint64 | ~[9]uint64 |
		~[10]uint64 | ~[11]uint64 | ~[12]uint64 | ~[13]uint64 | ~[14]uint64 |
		~[15]uint64 | ~[16]uint64 | ~[17]uint64 | ~[18]uint64 | ~[19]uint64 |
		~[20]uint64 | ~[21]uint64 | ~[22]uint64 | ~[23]uint64 | ~[24]uint64 |
		~[25]uint64 | ~[26]uint64 | ~[27]uint64 | ~[28]uint64 | ~[29]uint64 |
		~[30]uint64 | ~[31]uint64 | ~[32]uint64 | ~[33]uint64 | ~[34]uint64 |
		~[35]uint64 | ~[36]uint64 | ~[37]uint64 | ~[38]uint64 | ~[39]uint64 |
		~[40]uint64 | ~[41]uint64 | ~[42]uint64 | ~[43]uint64 | ~[44]uint64 |
		~[45]uint64 | ~[46]uint64 | ~[47]uint64 | ~[48]uint64 | ~[49]uint64 |
		~[50]uint64 | ~[51]uint64 | ~[52]uint64 | ~[53]uint64 | ~[54]uint64 |
		~[55]uint64 | ~[56]uint64 | ~[57]uint64 | ~[58]uint64 | ~[59]uint64 |
		~[60]uint64 | ~[61]uint64 | ~[62]uint64 | ~[63]uint64 | ~[64]uint64

	Bits() uint
}

type (
	W0    [0]uint64
	W1    [1]uint64
	W8    [1]uint64
	W16   [1]uint64
	W32   [1]uint64
	W64   [1]uint64
	W65   [2]uint64
	W128  [2]uint64
	W160  [3]uint64
	W192  [3]uint64
	W256  [4]uint64
	W320  [5]uint64
	W384  [6]uint64
	W448  [7]uint64
	W512  [8]uint64
	W768  [12]uint64
	W1024 [16]uint64
	W2048 [32]uint64
	W4096 [64]uint64
)

func (W0) Bits() uint    { return 0 }
func (W1) Bits() uint    { return 1 }
func (W8) Bits() uint    { return 8 }
func (W16) Bits() uint   { return 16 }
func (W32) Bits() uint   { return 32 }
func (W64) Bits() uint   { return 64 }
func (W65) Bits() uint   { return 65 }
func (W128) Bits() uint  { return 128 }
func (W160) Bits() uint  { return 160 }
func (W192) Bits() uint  { return 192 }
func (W256) Bits() uint  { return 256 }
func (W320) Bits() uint  { return 320 }
func (W384) Bits() uint  { return 384 }
func (W448) Bits() uint  { return 448 }
func (W512) Bits() uint  { return 512 }
func (W768) Bits() uint  { return 768 }
func (W1024) Bits() uint { return 1024 }
func (W2048) Bits() uint { return 2048 }
func (W4096) Bits() uint { return 4096 }

type (
	U0    = Uint[W0]
	U1    = Uint[W1]
	U8    = Uint[W8]
	U16   = Uint[W16]
	U32   = Uint[W32]
	U64   = Uint[W64]
	U65   = Uint[W65]
	U128  = Uint[W128]
	U160  = Uint[W160]
	U192  = Uint[W192]
	U256  = Uint[W256]
	U320  = Uint[W320]
	U384  = Uint[W384]
	U448  = Uint[W448]
	U512  = Uint[W512]
	U768  = Uint[W768]
	U1024 = Uint[W1024]
	U2048 = Uint[W2048]
	U4096 = Uint[W4096]

	I64   = Int[W64]
	I128  = Int[W128]
	I256  = Int[W256]
	I512  = Int[W512]
	I1024 = Int[W1024]

	B64   = Bits[W64]
	B128  = Bits[W128]
	B256  = Bits[W256]
	B512  = Bits[W512]
	B1024 = Bits[W1024]
)

const (
	maxUint64 = 1<<64 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
)

// layout describes a width: the bit count, limb count and the mask applied
// to the most significant limb.
type layout struct {
	bits  uint
	limbs int
	bytes int
	mask  uint64
}

func layoutOf[W Width]() layout {
	var w W
	bits := w.Bits()
	n := len(w)
	if uint(n) != (bits+63)/64 {
		panic(fmt.Sprintf("wideint: width %T declares %d bits but holds %d limbs, want %d", w, bits, n, (bits+63)/64))
	}
	mask := uint64(math.MaxUint64)
	if bits%64 != 0 {
		mask = 1<<(bits%64) - 1
	}
	return layout{bits: bits, limbs: n, bytes: int((bits + 7) / 8), mask: mask}
}

// BitsOf returns the bit width of W.
func BitsOf[W Width]() uint { return layoutOf[W]().bits }

// LimbsOf returns the number of 64-bit limbs used by W.
func LimbsOf[W Width]() int { return layoutOf[W]().limbs }

// BytesOf returns the number of bytes needed to hold a value of width W.
func BytesOf[W Width]() int { return layoutOf[W]().bytes }

// MaskOf returns the mask applied to the most significant limb of W.
func MaskOf[W Width]() uint64 { return layoutOf[W]().mask }

// Zero returns the zero value of width W.
func Zero[W Width]() (z Uint[W]) {
	layoutOf[W]()
	return z
}

// One returns 1. It panics for zero-width integers, which can not hold it.
func One[W Width]() (v Uint[W]) {
	if layoutOf[W]().bits == 0 {
		panic("wideint: one does not exist for zero-width integers")
	}
	v.words()[0] = 1
	return v
}

// Max returns 2^BITS - 1.
func Max[W Width]() (v Uint[W]) {
	l := layoutOf[W]()
	x := v.words()
	for i := range x {
		x[i] = maxUint64
	}
	if l.limbs > 0 {
		x[l.limbs-1] &= l.mask
	}
	return v
}
