package idencode

import (
	"fmt"
	"math"
)

// Gamma implements Elias gamma coding with a +1 offset so that zero is
// representable. For a value v, let k = bitLen(v+1) - 1: the codeword
// is Unary(k) followed by the low k bits of v+1, whose leading 1-bit is
// left implicit. The codeword for v is 2k+1 bits.
type Gamma struct{}

// EncodeOne appends the gamma codeword for v to dst.
func (Gamma) EncodeOne(v uint64, dst *BitVec) {
	k := bitLen(v+1) - 1
	if v == math.MaxUint64 {
		k = 64 // v+1 wraps, its bit length is 65
	}
	Unary{}.EncodeOne(uint64(k), dst)
	for b := k - 1; 0 <= b; b -= 1 {
		dst.Push((v+1)&(1<<uint(b)) != 0)
	}
}

// DecodeOne decodes the unary length prefix, then reads that many
// offset bits and restores the implicit leading 1-bit.
func (Gamma) DecodeOne(bits *BitVec, off int) (uint64, int, error) {
	kv, n, err := Unary{}.DecodeOne(bits, off)
	if err != nil {
		return 0, 0, err
	}
	if 64 < kv {
		return 0, 0, fmt.Errorf("gamma codeword beyond 64 bits: %w", ErrOverflow)
	}
	k := int(kv)
	if bits.Len() < off+n+k {
		return 0, 0, fmt.Errorf("gamma offset bits cut short: %w", ErrTruncatedCodeword)
	}
	var x uint64
	for b := 0; b < k; b += 1 {
		x <<= 1
		if bits.At(off + n + b) {
			x |= 1
		}
	}
	if k == 64 {
		// v+1 is the 65-bit value 2^64 + x; only x == 0 fits back.
		if x != 0 {
			return 0, 0, fmt.Errorf("gamma codeword beyond 64 bits: %w", ErrOverflow)
		}
		return math.MaxUint64, n + k, nil
	}
	return (1<<uint(k) | x) - 1, n + k, nil
}
