package idencode

import "io"

// Writer accumulates bits and flushes them to an underlying io.Writer
// as whole bytes.
//
// A Writer serves exactly one encode operation: bits are buffered with
// WriteBit/WriteBits and written out once by Close. When constructed
// with terminate set, Close appends a single 1-bit after the data so a
// terminator-aware Reader can recover the exact bit count from the zero
// padded final byte.
type Writer struct {
	w         io.Writer
	bits      BitVec
	terminate bool
	closed    bool
}

// NewWriter returns a Writer flushing to w on Close.
func NewWriter(w io.Writer, terminate bool) *Writer {
	return &Writer{w: w, terminate: terminate}
}

// WriteBit appends a single bit.
func (bw *Writer) WriteBit(bit bool) error {
	if bw.closed {
		return errWriterClosed
	}
	bw.bits.Push(bit)
	return nil
}

// WriteBits appends all bits of v in order.
func (bw *Writer) WriteBits(v *BitVec) error {
	if bw.closed {
		return errWriterClosed
	}
	for i := 0; i < v.Len(); i += 1 {
		bw.bits.Push(v.At(i))
	}
	return nil
}

// Close finalizes the stream: it appends the terminator bit when
// configured, zero pads the final byte and writes the result to the
// underlying writer in a single call. Errors from the underlying writer
// are returned unchanged. Close is idempotent and no writes are
// accepted after it.
func (bw *Writer) Close() error {
	if bw.closed {
		return nil
	}
	bw.closed = true
	if bw.terminate {
		bw.bits.Push(true)
	}
	if bw.bits.Len() == 0 {
		return nil
	}
	_, err := bw.w.Write(bw.bits.Bytes())
	return err
}
