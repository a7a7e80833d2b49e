// Package idencode implements bit-granular universal integer codes:
// Unary, Variable Byte, Elias Gamma and Elias Delta.
//
// Each codec turns an unsigned integer into a self-delimiting codeword,
// so sequences of values can be packed back to back without separators
// or length fields. On the wire, bits are most significant first within
// each byte and bytes follow stream order; the final partial byte is
// zero padded, optionally after a single 1-bit terminator that lets the
// reader recover the exact bit count.
package idencode

import (
	"fmt"
	"io"
)

// Codec converts a single unsigned integer to and from its
// self-delimiting codeword. Implementations are stateless; the same
// value may be shared freely.
type Codec interface {
	// EncodeOne appends the codeword for v to dst.
	EncodeOne(v uint64, dst *BitVec)

	// DecodeOne decodes one codeword from bits starting at offset off,
	// returning the value and the number of bits consumed. It relies
	// only on the codeword's own structure to find its end. Running out
	// of bits mid-codeword fails with ErrTruncatedCodeword; a codeword
	// carrying more than 64 value bits fails with ErrOverflow.
	DecodeOne(bits *BitVec, off int) (v uint64, n int, err error)
}

// Encoder encodes a sequence of integers to an underlying writer with a
// fixed codec.
type Encoder[T Unsigned] struct {
	c       Codec
	bw      *Writer
	scratch BitVec
}

// NewEncoder returns an Encoder writing codewords of c to w. See
// NewWriter for the terminate flag.
func NewEncoder[T Unsigned](c Codec, w io.Writer, terminate bool) *Encoder[T] {
	return &Encoder[T]{c: c, bw: NewWriter(w, terminate)}
}

// Encode appends the codewords of nums to the stream.
func (e *Encoder[T]) Encode(nums ...T) error {
	for _, num := range nums {
		e.scratch.Reset()
		e.c.EncodeOne(uint64(num), &e.scratch)
		if err := e.bw.WriteBits(&e.scratch); err != nil {
			return err
		}
	}
	return nil
}

// Close finalizes the stream. See Writer.Close.
func (e *Encoder[T]) Close() error {
	return e.bw.Close()
}

// Decoder decodes a sequence of integers from an underlying reader with
// a fixed codec.
type Decoder[T Unsigned] struct {
	c  Codec
	br *Reader
}

// NewDecoder returns a Decoder reading codewords of c from r. See
// NewReader for the terminate flag.
func NewDecoder[T Unsigned](c Codec, r io.Reader, terminate bool) *Decoder[T] {
	return &Decoder[T]{c: c, br: NewReader(r, terminate)}
}

// Decode reads the source to exhaustion and decodes every codeword in
// it. It aborts on the first failure, since codeword boundaries behind
// a corruption point cannot be trusted. Bits left over after the last
// whole codeword make the stream malformed: the error wraps both
// ErrMalformedStream and the underlying codeword error. A decoded value
// that does not fit T fails with ErrOverflow.
func (d *Decoder[T]) Decode() ([]T, error) {
	bits, err := d.br.ReadAll()
	if err != nil {
		return nil, err
	}
	nums := []T{}
	for off := 0; off < bits.Len(); {
		v, n, err := d.c.DecodeOne(bits, off)
		if err != nil {
			return nil, fmt.Errorf("undecodable bits at offset %d: %w: %w", off, err, ErrMalformedStream)
		}
		if maxVal[T]() < v {
			return nil, fmt.Errorf("value %d exceeds %d-bit width: %w", v, bitLen(maxVal[T]()), ErrOverflow)
		}
		nums = append(nums, T(v))
		off += n
	}
	return nums, nil
}

// Encode writes the codewords of nums to w with codec c and closes the
// stream.
func Encode[T Unsigned](c Codec, w io.Writer, terminate bool, nums []T) error {
	e := NewEncoder[T](c, w, terminate)
	if err := e.Encode(nums...); err != nil {
		return err
	}
	return e.Close()
}

// Decode decodes every value in r with codec c.
func Decode[T Unsigned](c Codec, r io.Reader, terminate bool) ([]T, error) {
	return NewDecoder[T](c, r, terminate).Decode()
}
