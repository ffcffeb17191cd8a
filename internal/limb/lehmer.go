package limb

// Matrix is a 2x2 cofactor matrix produced by a Lehmer step, stored as
// absolute values. The signs alternate with the number of Euclidean steps
// taken: when Even is set the matrix is
//
//	[ M00 -M01]
//	[-M10  M11]
//
// and otherwise
//
//	[-M00  M01]
//	[ M10 -M11]
//
// Applying it to a pair (a, b) with a >= b yields a pair (a', b') with
// a' >= b' that has the same greatest common divisor.
type Matrix struct {
	M00, M01, M10, M11 uint64
	Even               bool
}

// Identity is the matrix that leaves a pair unchanged.
var Identity = Matrix{M00: 1, M11: 1, Even: true}

// IsIdentity reports whether m made no progress. Callers fall back to a full
// Euclidean step in that case.
func (m Matrix) IsIdentity() bool {
	return m.M01 == 0
}

// Lehmer runs Knuth's algorithm L (TAOCP vol. 2, 4.5.2) on the leading bits
// of a pair of numbers and returns the accumulated cofactor matrix.
//
// a and b must be the top bits of the full operands taken at the same shift,
// with a >= b and a < 2^62 so that the cofactors fit in an int64.
func Lehmer(a, b uint64) Matrix {
	if a < b {
		panic("limb: lehmer prefix out of order")
	}
	if a >= 1<<62 {
		panic("limb: lehmer prefix too wide")
	}

	u, v := int64(a), int64(b)
	var A, B, C, D int64 = 1, 0, 0, 1
	even := true
	for {
		if v+C <= 0 || v+D <= 0 {
			break
		}
		q := (u + A) / (v + C)
		if q != (u+B)/(v+D) {
			break
		}
		A, C = C, A-q*C
		B, D = D, B-q*D
		u, v = v, u-q*v
		even = !even
	}

	if B == 0 {
		return Identity
	}
	if even {
		return Matrix{M00: uint64(A), M01: uint64(-B), M10: uint64(-C), M11: uint64(D), Even: true}
	}
	return Matrix{M00: uint64(-A), M01: uint64(B), M10: uint64(C), M11: uint64(-D), Even: false}
}
