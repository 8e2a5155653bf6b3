// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"testing"

	"github.com/xkr47/pcm-bit-detect/detect"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  detect.PcmType
		v    int32
		want []byte
	}{
		{detect.S16LE, 0x1234, []byte{0x34, 0x12}},
		{detect.S16BE, 0x1234, []byte{0x12, 0x34}},
		{detect.S16LE, -1, []byte{0xff, 0xff}},
		{detect.U16LE, 0, []byte{0x00, 0x80}},
		{detect.U16BE, 0, []byte{0x80, 0x00}},
		{detect.U16LE, -32768, []byte{0x00, 0x00}},
		{detect.U16BE, 32767, []byte{0xff, 0xff}},
		{detect.S24LE, 0x123456, []byte{0x56, 0x34, 0x12}},
		{detect.S24BE, 0x123456, []byte{0x12, 0x34, 0x56}},
		{detect.S24BE, -2, []byte{0xff, 0xff, 0xfe}},
		{detect.U24LE, 0, []byte{0x00, 0x00, 0x80}},
		{detect.U24BE, 0, []byte{0x80, 0x00, 0x00}},
		{detect.U24BE, -8388608, []byte{0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		dst := make([]byte, tt.typ.BytesPerSample())
		Encode(dst, tt.v, tt.typ)
		if !bytes.Equal(dst, tt.want) {
			t.Errorf("Encode(%d, %v) = % x, want % x", tt.v, tt.typ, dst, tt.want)
		}
		if got := Decode(dst, tt.typ); got != tt.v {
			t.Errorf("Decode(% x, %v) = %d, want %d", dst, tt.typ, got, tt.v)
		}
	}
}

func TestDecode_RoundTripExtremes(t *testing.T) {
	t.Parallel()

	for _, typ := range detect.AllPcmTypes() {
		full := int32(1) << (typ.Bits() - 1)
		for _, v := range []int32{-full, -full + 1, -1, 0, 1, full - 2, full - 1} {
			buf := make([]byte, 3)
			Encode(buf, v, typ)
			if got := Decode(buf, typ); got != v {
				t.Errorf("%v: round trip of %d gave %d", typ, v, got)
			}
		}
	}
}

func TestSwapByteOrder(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4, 5, 6, 7}
	SwapByteOrder(data, detect.S16LE)
	if want := []byte{2, 1, 4, 3, 6, 5, 7}; !bytes.Equal(data, want) {
		t.Errorf("16-bit swap = %v, want %v", data, want)
	}

	data = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	SwapByteOrder(data, detect.U24BE)
	if want := []byte{3, 2, 1, 6, 5, 4, 7, 8}; !bytes.Equal(data, want) {
		t.Errorf("24-bit swap = %v, want %v", data, want)
	}
}

func TestSwapByteOrder_ConvertsEncoding(t *testing.T) {
	t.Parallel()

	for _, typ := range detect.AllPcmTypes() {
		le := make([]byte, typ.BytesPerSample())
		Encode(le, -12345, typ)
		SwapByteOrder(le, typ)

		other := Swapped(typ)
		if got := Decode(le, other); got != -12345 {
			t.Errorf("%v swapped and read as %v = %d, want -12345", typ, other, got)
		}
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	want := map[detect.PcmType]string{
		detect.S16LE: "test-s16.pcm",
		detect.S16BE: "test-s16be.pcm",
		detect.U16LE: "test-u16.pcm",
		detect.U16BE: "test-u16be.pcm",
		detect.S24LE: "test-s24.pcm",
		detect.S24BE: "test-s24be.pcm",
		detect.U24LE: "test-u24.pcm",
		detect.U24BE: "test-u24be.pcm",
	}
	for typ, name := range want {
		if got := FileName(typ); got != name {
			t.Errorf("FileName(%v) = %q, want %q", typ, got, name)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	buf := make([]byte, 3)

	b.ReportAllocs()

	for i := range b.N {
		Encode(buf, int32(i), detect.U24BE)
	}
}
