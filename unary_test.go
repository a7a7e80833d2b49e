package idencode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnaryEncodeOne(t *testing.T) {
	cases := map[uint64]string{
		0: "1",
		1: "01",
		2: "001",
		3: "0001",
		7: "00000001",
	}
	for v, expect := range cases {
		dst := &BitVec{}
		Unary{}.EncodeOne(v, dst)
		if got := bitstring(dst); got != expect {
			t.Errorf("unary(%d) = %s, expected %s", v, got, expect)
		}
	}
}

func TestUnaryCodewordLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 5, 64, 1000} {
		dst := &BitVec{}
		Unary{}.EncodeOne(v, dst)
		if dst.Len() != int(v)+1 {
			t.Errorf("unary(%d) is %d bits, expected %d", v, dst.Len(), v+1)
		}
	}
}

func TestUnaryDecodeOne(t *testing.T) {
	t.Run("sequence", func(tt *testing.T) {
		bits := pushBits("001 1 01")
		v, n, err := Unary{}.DecodeOne(bits, 0)
		if err != nil {
			tt.Fatalf("decode: %v", err)
		}
		if v != 2 || n != 3 {
			tt.Errorf("got (%d, %d), expected (2, 3)", v, n)
		}
		v, n, err = Unary{}.DecodeOne(bits, 3)
		if err != nil {
			tt.Fatalf("decode: %v", err)
		}
		if v != 0 || n != 1 {
			tt.Errorf("got (%d, %d), expected (0, 1)", v, n)
		}
		v, n, err = Unary{}.DecodeOne(bits, 4)
		if err != nil {
			tt.Fatalf("decode: %v", err)
		}
		if v != 1 || n != 2 {
			tt.Errorf("got (%d, %d), expected (1, 2)", v, n)
		}
	})
	t.Run("truncated", func(tt *testing.T) {
		bits := pushBits("0000")
		_, _, err := Unary{}.DecodeOne(bits, 0)
		if errors.Is(err, ErrTruncatedCodeword) != true {
			tt.Errorf("err %v, expected ErrTruncatedCodeword", err)
		}
	})
	t.Run("exhausted", func(tt *testing.T) {
		bits := pushBits("1")
		_, _, err := Unary{}.DecodeOne(bits, 1)
		if errors.Is(err, ErrTruncatedCodeword) != true {
			tt.Errorf("err %v, expected ErrTruncatedCodeword", err)
		}
	})
}

func TestUnaryRoundTrip(t *testing.T) {
	t.Run("uint8", func(tt *testing.T) {
		nums := []uint8{0, 1, 17, 255}
		buf := &bytes.Buffer{}
		if err := Encode(Unary{}, buf, true, nums); err != nil {
			tt.Fatalf("encode: %v", err)
		}
		decoded, err := Decode[uint8](Unary{}, buf, true)
		if err != nil {
			tt.Fatalf("decode: %v", err)
		}
		if cmp.Equal(decoded, nums) != true {
			tt.Errorf("%v != %v", decoded, nums)
		}
	})
	t.Run("uint16", func(tt *testing.T) {
		nums := []uint16{0, 65535, 3}
		buf := &bytes.Buffer{}
		if err := Encode(Unary{}, buf, true, nums); err != nil {
			tt.Fatalf("encode: %v", err)
		}
		decoded, err := Decode[uint16](Unary{}, buf, true)
		if err != nil {
			tt.Fatalf("decode: %v", err)
		}
		if cmp.Equal(decoded, nums) != true {
			tt.Errorf("%v != %v", decoded, nums)
		}
	})
}
