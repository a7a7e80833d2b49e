package idencode

import "math/bits"

// bitLen returns the minimal number of bits needed to represent v.
// By convention bitLen(0) == 0.
func bitLen(v uint64) int {
	return bits.Len64(v)
}

// maxVal returns the largest value representable by T, widened to uint64.
func maxVal[T Unsigned]() uint64 {
	return uint64(^T(0))
}
