package wideint

// RandSource supplies random limbs. *math/rand.Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

func Larger[W Width](a, b Uint[W]) Uint[W] {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller[W Width](a, b Uint[W]) Uint[W] {
	if b.LessThan(a) {
		return b
	}
	return a
}
