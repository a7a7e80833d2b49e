package idencode

import "errors"

var (
	// ErrMalformedStream reports a byte stream that cannot hold encoded
	// data: an empty source, a terminated stream with no terminator bit,
	// or leftover bits that form no codeword.
	ErrMalformedStream = errors.New("idencode: malformed stream")

	// ErrTruncatedCodeword reports a bit sequence that ran out before the
	// current codeword completed.
	ErrTruncatedCodeword = errors.New("idencode: truncated codeword")

	// ErrOverflow reports a codeword whose value does not fit the
	// requested integer width.
	ErrOverflow = errors.New("idencode: value overflows target width")

	// ErrIndexOutOfRange is the panic value for BitVec index misuse.
	ErrIndexOutOfRange = errors.New("idencode: bit index out of range")

	errWriterClosed = errors.New("idencode: writer already closed")
)
