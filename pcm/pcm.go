// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"strings"

	"github.com/xkr47/pcm-bit-detect/detect"
)

// Encode stores the signed sample v into dst using t. dst must hold at
// least t.BytesPerSample() bytes. Unsigned types are biased by half the
// range, so 0 becomes 0x8000 or 0x800000.
func Encode(dst []byte, v int32, t detect.PcmType) {
	u := uint32(v)
	if !t.Signed {
		u += 1 << (t.Bits() - 1)
	}

	n := t.BytesPerSample()
	for i := range n {
		b := byte(u >> (8 * i))
		if t.BigEndian {
			dst[n-1-i] = b
		} else {
			dst[i] = b
		}
	}
}

// Decode is the inverse of Encode.
func Decode(src []byte, t detect.PcmType) int32 {
	n := t.BytesPerSample()

	var u uint32
	for i := range n {
		var b byte
		if t.BigEndian {
			b = src[n-1-i]
		} else {
			b = src[i]
		}
		u |= uint32(b) << (8 * i)
	}

	bits := t.Bits()
	if !t.Signed {
		u -= 1 << (bits - 1)
	}
	// sign-extend from the sample width
	shift := 32 - bits
	return int32(u<<shift) >> shift
}

// SwapByteOrder reverses the bytes of every whole sample in data in place,
// turning little-endian data of type t into big-endian and back. A trailing
// partial sample is left alone.
func SwapByteOrder(data []byte, t detect.PcmType) {
	n := t.BytesPerSample()
	for off := 0; off+n <= len(data); off += n {
		s := data[off : off+n]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
	}
}

// Swapped returns t with the opposite byte order.
func Swapped(t detect.PcmType) detect.PcmType {
	t.BigEndian = !t.BigEndian
	return t
}

// FileName returns the conventional fixture name for t: test-s16.pcm for
// little-endian types, test-s16be.pcm for big-endian ones.
func FileName(t detect.PcmType) string {
	name := strings.TrimSuffix(t.String(), "le")
	return fmt.Sprintf("test-%s.pcm", name)
}
