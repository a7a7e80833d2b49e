package idencode

import (
	"fmt"
	"math"
)

// Delta implements Elias delta coding with the same +1 offset as Gamma.
// For a value v with k = bitLen(v+1) - 1 offset bits, the codeword is
// the gamma codeword for k+1 followed by the low k bits of v+1. The
// length field grows logarithmically, so delta codewords are
// asymptotically shorter than gamma for large values.
type Delta struct{}

// EncodeOne appends the delta codeword for v to dst.
func (Delta) EncodeOne(v uint64, dst *BitVec) {
	k := bitLen(v+1) - 1
	if v == math.MaxUint64 {
		k = 64
	}
	Gamma{}.EncodeOne(uint64(k)+1, dst)
	for b := k - 1; 0 <= b; b -= 1 {
		dst.Push((v+1)&(1<<uint(b)) != 0)
	}
}

// DecodeOne decodes the gamma length prefix to k+1, then reads the k
// offset bits and restores the implicit leading 1-bit.
func (Delta) DecodeOne(bits *BitVec, off int) (uint64, int, error) {
	kv, n, err := Gamma{}.DecodeOne(bits, off)
	if err != nil {
		return 0, 0, err
	}
	if kv == 0 {
		return 0, 0, fmt.Errorf("delta length field is zero: %w", ErrMalformedStream)
	}
	if 65 < kv {
		return 0, 0, fmt.Errorf("delta codeword beyond 64 bits: %w", ErrOverflow)
	}
	k := int(kv) - 1
	if bits.Len() < off+n+k {
		return 0, 0, fmt.Errorf("delta offset bits cut short: %w", ErrTruncatedCodeword)
	}
	var x uint64
	for b := 0; b < k; b += 1 {
		x <<= 1
		if bits.At(off + n + b) {
			x |= 1
		}
	}
	if k == 64 {
		if x != 0 {
			return 0, 0, fmt.Errorf("delta codeword beyond 64 bits: %w", ErrOverflow)
		}
		return math.MaxUint64, n + k, nil
	}
	return (1<<uint(k) | x) - 1, n + k, nil
}
