package idencode

import "fmt"

// Unary encodes a value v as v zero-bits followed by a single 1-bit, so
// the codeword for v is exactly v+1 bits long. Zero is represented
// directly by a lone 1-bit; there is no implicit offset. Codeword
// length grows linearly with the value, which makes the code practical
// only for small values.
type Unary struct{}

// EncodeOne appends v zero-bits and the terminating 1-bit to dst.
func (Unary) EncodeOne(v uint64, dst *BitVec) {
	for ; 0 < v; v -= 1 {
		dst.Push(false)
	}
	dst.Push(true)
}

// DecodeOne counts zero-bits from off up to the terminating 1-bit.
func (Unary) DecodeOne(bits *BitVec, off int) (uint64, int, error) {
	for i := off; i < bits.Len(); i += 1 {
		if bits.At(i) {
			return uint64(i - off), i - off + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("unary codeword without 1-bit: %w", ErrTruncatedCodeword)
}
