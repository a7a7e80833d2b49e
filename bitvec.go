package idencode

// BitVec is an ordered, growable sequence of bits backed by a packed
// byte buffer. The first pushed bit occupies the most significant
// position of the first byte, and bytes follow in push order, so
// rendering to bytes and re-reading them preserves bit order.
type BitVec struct {
	buf []byte
	n   int
}

// FromBytes constructs a BitVec from p. Every byte expands to 8 bits,
// most significant bit first. The buffer is copied.
func FromBytes(p []byte) *BitVec {
	buf := make([]byte, len(p))
	copy(buf, p)
	return &BitVec{buf: buf, n: len(p) * 8}
}

// Len returns the number of bits.
func (v *BitVec) Len() int {
	return v.n
}

// Push appends a single bit.
func (v *BitVec) Push(bit bool) {
	if v.n%8 == 0 {
		v.buf = append(v.buf, 0)
	}
	if bit {
		v.buf[v.n>>3] |= 1 << (7 - uint(v.n&7))
	}
	v.n += 1
}

// At returns the bit at position i, counting from the earliest pushed
// bit. It panics with ErrIndexOutOfRange if i is out of range.
func (v *BitVec) At(i int) bool {
	if i < 0 || v.n <= i {
		panic(ErrIndexOutOfRange)
	}
	return v.buf[i>>3]&(1<<(7-uint(i&7))) != 0
}

// Truncate shrinks the sequence to its first n bits. The cut bits are
// cleared so a later Bytes stays zero padded. It panics with
// ErrIndexOutOfRange if n is negative or beyond Len.
func (v *BitVec) Truncate(n int) {
	if n < 0 || v.n < n {
		panic(ErrIndexOutOfRange)
	}
	v.buf = v.buf[:(n+7)/8]
	if r := n & 7; r != 0 {
		v.buf[len(v.buf)-1] &= ^byte(0) << (8 - uint(r))
	}
	v.n = n
}

// Reset empties the sequence, keeping the allocated buffer.
func (v *BitVec) Reset() {
	v.buf = v.buf[:0]
	v.n = 0
}

// Bytes renders the sequence as bytes, with the final partial byte zero
// padded. The returned slice is a copy.
func (v *BitVec) Bytes() []byte {
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}
