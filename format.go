package wideint

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/shabbyrobe/go-wideint/internal/limb"
)

// chunk describes the largest power of a base that fits in a uint64, and
// the number of digits it spans.
type chunk struct {
	base   uint64
	digits int
}

// 16^16 is 2^64 and does not fit, so hex uses 15 digits per chunk.
var chunks = map[int]chunk{
	2:  {base: 1 << 63, digits: 63},
	8:  {base: 1 << 63, digits: 21},
	10: {base: 10000000000000000000, digits: 19},
	16: {base: 1 << 60, digits: 15},
}

// appendDigits appends the digits of the little-endian limbs x in the given
// base (2, 8, 10 or 16) to dst. x is consumed.
func appendDigits(dst []byte, x []uint64, base int, upper bool) []byte {
	x = x[:limb.Len(x)]
	if len(x) == 0 {
		return append(dst, '0')
	}

	ch := chunks[base]
	var parts []uint64
	for len(x) > 0 {
		var rem uint64
		for i := len(x) - 1; i >= 0; i-- {
			x[i], rem = bits.Div64(rem, x[i], ch.base)
		}
		x = x[:limb.Len(x)]
		parts = append(parts, rem)
	}

	var buf [64]byte
	for i := len(parts) - 1; i >= 0; i-- {
		digits := strconv.AppendUint(buf[:0], parts[i], base)
		if i != len(parts)-1 {
			for pad := len(digits); pad < ch.digits; pad++ {
				dst = append(dst, '0')
			}
		}
		if upper {
			for j, c := range digits {
				if c >= 'a' && c <= 'f' {
					digits[j] = c - 'a' + 'A'
				}
			}
		}
		dst = append(dst, digits...)
	}
	return dst
}

// formatNumber implements fmt.Formatter for a magnitude given as
// little-endian limbs and a sign. x is consumed.
func formatNumber(s fmt.State, verb rune, negative bool, x []uint64, typeName string) {
	var base int
	var prefix string
	upper := false
	switch verb {
	case 'v', 'd', 's':
		base = 10
	case 'b':
		base, prefix = 2, "0b"
	case 'o', 'O':
		base, prefix = 8, "0o"
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix, upper = 16, "0X", true
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", verb, typeName, string(appendDigits(nil, x, 10, false)))
		return
	}
	if verb != 'O' && !s.Flag('#') {
		prefix = ""
	}

	digits := appendDigits(nil, x, base, upper)
	if prec, ok := s.Precision(); ok {
		if prec == 0 && len(digits) == 1 && digits[0] == '0' {
			digits = digits[:0]
		}
		for len(digits) < prec {
			digits = append([]byte{'0'}, digits...)
		}
	}

	var sign string
	switch {
	case negative:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	n := len(sign) + len(prefix) + len(digits)
	width, hasWidth := s.Width()
	var pad int
	if hasWidth && width > n {
		pad = width - n
	}
	_, hasPrec := s.Precision()

	out := make([]byte, 0, n+pad)
	switch {
	case pad > 0 && s.Flag('-'):
		out = append(out, sign...)
		out = append(out, prefix...)
		out = append(out, digits...)
		for ; pad > 0; pad-- {
			out = append(out, ' ')
		}
	case pad > 0 && s.Flag('0') && !hasPrec:
		out = append(out, sign...)
		out = append(out, prefix...)
		for ; pad > 0; pad-- {
			out = append(out, '0')
		}
		out = append(out, digits...)
	default:
		for ; pad > 0; pad-- {
			out = append(out, ' ')
		}
		out = append(out, sign...)
		out = append(out, prefix...)
		out = append(out, digits...)
	}
	s.Write(out)
}

// String returns the decimal representation of u.
func (u Uint[W]) String() string {
	x := make([]uint64, len(u.limbs))
	copy(x, u.words())
	return string(appendDigits(nil, x, 10, false))
}

// Text returns the representation of u in base 2, 8, 10 or 16, without a
// prefix. Hex digits are lowercase.
func (u Uint[W]) Text(base int) string {
	if _, ok := chunks[base]; !ok {
		panic("wideint: unsupported text base")
	}
	x := make([]uint64, len(u.limbs))
	copy(x, u.words())
	return string(appendDigits(nil, x, base, false))
}

// Format implements fmt.Formatter. It supports the verbs v, d, s, b, o, O,
// x and X, the '#' prefix flag ("0b", "0o", "0x" or "0X"), '+', ' ', width,
// precision, '-' and '0'.
func (u Uint[W]) Format(s fmt.State, c rune) {
	x := make([]uint64, len(u.limbs))
	copy(x, u.words())
	formatNumber(s, c, false, x, "wideint.Uint")
}
