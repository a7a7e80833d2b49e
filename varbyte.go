package idencode

import "fmt"

// VarByte encodes a value in base-128 groups of 8 bits, most
// significant group first. The leading bit of every group is a
// continuation flag, 1 meaning more groups follow and 0 marking the
// last group; the remaining 7 bits are payload. Values up to 127 take a
// single group.
type VarByte struct{}

// EncodeOne appends the 8-bit groups of v to dst.
func (VarByte) EncodeOne(v uint64, dst *BitVec) {
	groups := 1
	for x := v >> 7; 0 < x; x >>= 7 {
		groups += 1
	}
	for i := groups - 1; 0 <= i; i -= 1 {
		dst.Push(0 < i)
		g := byte(v>>(7*uint(i))) & 0x7f
		for b := 6; 0 <= b; b -= 1 {
			dst.Push(g&(1<<uint(b)) != 0)
		}
	}
}

// DecodeOne reads 8-bit groups until one with a cleared continuation
// flag, reassembling the payload most significant group first.
func (VarByte) DecodeOne(bits *BitVec, off int) (uint64, int, error) {
	var v uint64
	n := 0
	for {
		if bits.Len() < off+n+8 {
			return 0, 0, fmt.Errorf("variable byte group cut short: %w", ErrTruncatedCodeword)
		}
		if v>>57 != 0 {
			return 0, 0, fmt.Errorf("variable byte codeword beyond 64 bits: %w", ErrOverflow)
		}
		cont := bits.At(off + n)
		var g uint64
		for b := 1; b < 8; b += 1 {
			g <<= 1
			if bits.At(off + n + b) {
				g |= 1
			}
		}
		v = v<<7 | g
		n += 8
		if !cont {
			return v, n, nil
		}
	}
}
