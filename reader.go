package idencode

import (
	"fmt"
	"io"
)

// Reader drains an underlying io.Reader and exposes its bytes as a
// BitVec.
//
// When constructed with terminate set, ReadAll locates the terminator
// written by a terminating Writer, the last 1-bit of the stream, and
// truncates it together with the padding behind it, recovering the
// exact original bit count.
type Reader struct {
	r         io.Reader
	terminate bool
}

// NewReader returns a Reader draining r.
func NewReader(r io.Reader, terminate bool) *Reader {
	return &Reader{r: r, terminate: terminate}
}

// ReadAll reads the source to exhaustion and returns the bits of every
// byte, most significant bit first. I/O errors from the source are
// returned unchanged. An empty source, or a terminated stream with no
// 1-bit anywhere, fails with ErrMalformedStream.
func (br *Reader) ReadAll() (*BitVec, error) {
	p, err := io.ReadAll(br.r)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("empty source: %w", ErrMalformedStream)
	}
	bits := FromBytes(p)
	if !br.terminate {
		return bits, nil
	}
	for i := bits.Len() - 1; 0 <= i; i -= 1 {
		if bits.At(i) {
			bits.Truncate(i)
			return bits, nil
		}
	}
	return nil, fmt.Errorf("no terminator bit: %w", ErrMalformedStream)
}
