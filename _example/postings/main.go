package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/gsmyridis/idencode"
)

// Gap-encodes a sorted postings list with each codec and compares the
// encoded sizes against plain 4-byte integers.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	postings := []uint32{3, 7, 21, 22, 80, 1001, 1002, 1407, 20000, 20001}

	gaps := make([]uint32, len(postings))
	prev := uint32(0)
	for i, id := range postings {
		gaps[i] = id - prev
		prev = id
	}

	codecs := []struct {
		name  string
		codec idencode.Codec
	}{
		{"unary", idencode.Unary{}},
		{"varbyte", idencode.VarByte{}},
		{"gamma", idencode.Gamma{}},
		{"delta", idencode.Delta{}},
	}

	fmt.Printf("%d postings, %d bytes raw\n", len(postings), 4*len(postings))
	for _, c := range codecs {
		buf := &bytes.Buffer{}
		if err := idencode.Encode(c.codec, buf, true, gaps); err != nil {
			return errors.Wrapf(err, "encode %s", c.name)
		}

		decoded, err := idencode.Decode[uint32](c.codec, bytes.NewReader(buf.Bytes()), true)
		if err != nil {
			return errors.Wrapf(err, "decode %s", c.name)
		}
		for i, g := range gaps {
			if decoded[i] != g {
				return errors.Errorf("%s: gap %d decoded to %d, expected %d", c.name, i, decoded[i], g)
			}
		}

		fmt.Printf("%-8s %d bytes\n", c.name, buf.Len())
	}
	return nil
}
