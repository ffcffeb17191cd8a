package limb

// ShlSmall shifts x left by n bits in place, n < 64, and returns the bits
// shifted out of the most significant limb.
func ShlSmall(x []uint64, n uint) (out uint64) {
	if n == 0 {
		return 0
	}
	for i := range x {
		w := x[i]
		x[i] = w<<n | out
		out = w >> (64 - n)
	}
	return out
}

// ShrSmall shifts x right by n bits in place, n < 64, and returns the bits
// shifted out of the least significant limb, left-aligned in the word.
func ShrSmall(x []uint64, n uint) (out uint64) {
	if n == 0 {
		return 0
	}
	for i := len(x) - 1; i >= 0; i-- {
		w := x[i]
		x[i] = w>>n | out
		out = w << (64 - n)
	}
	return out
}

// Shl writes src << n into dst, truncating to len(dst). dst and src must
// have the same length and may alias.
func Shl(dst, src []uint64, n uint) {
	words, rem := int(n/64), n%64
	if words >= len(dst) {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	for i := len(dst) - 1; i >= words; i-- {
		w := src[i-words] << rem
		if rem != 0 && i-words > 0 {
			w |= src[i-words-1] >> (64 - rem)
		}
		dst[i] = w
	}
	for i := 0; i < words; i++ {
		dst[i] = 0
	}
}

// Shr writes src >> n into dst. dst and src must have the same length and
// may alias.
func Shr(dst, src []uint64, n uint) {
	words, rem := int(n/64), n%64
	if words >= len(dst) {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	last := len(dst) - words
	for i := 0; i < last; i++ {
		w := src[i+words] >> rem
		if rem != 0 && i+words+1 < len(src) {
			w |= src[i+words+1] << (64 - rem)
		}
		dst[i] = w
	}
	for i := last; i < len(dst); i++ {
		dst[i] = 0
	}
}
