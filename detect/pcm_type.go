// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"fmt"
	"strings"
)

// PcmType identifies one of the eight raw PCM encodings the detector can tell
// apart.
type PcmType struct {
	Signed    bool
	Bits24    bool
	BigEndian bool
}

var (
	S16LE = PcmType{Signed: true}
	S16BE = PcmType{Signed: true, BigEndian: true}
	U16LE = PcmType{}
	U16BE = PcmType{BigEndian: true}
	S24LE = PcmType{Signed: true, Bits24: true}
	S24BE = PcmType{Signed: true, Bits24: true, BigEndian: true}
	U24LE = PcmType{Bits24: true}
	U24BE = PcmType{Bits24: true, BigEndian: true}
)

// AllPcmTypes returns every PcmType in canonical order. Ties in the ranking
// are broken by this order.
func AllPcmTypes() []PcmType {
	return []PcmType{S16LE, S16BE, U16LE, U16BE, S24LE, S24BE, U24LE, U24BE}
}

// Bits returns the sample width, 16 or 24.
func (t PcmType) Bits() int {
	if t.Bits24 {
		return 24
	}
	return 16
}

// BytesPerSample returns the number of bytes one sample of one channel takes.
func (t PcmType) BytesPerSample() int { return t.Bits() / 8 }

// String returns the short name used by sox and ffmpeg, e.g. "s16le".
func (t PcmType) String() string {
	sign := "u"
	if t.Signed {
		sign = "s"
	}
	order := "le"
	if t.BigEndian {
		order = "be"
	}
	return fmt.Sprintf("%s%d%s", sign, t.Bits(), order)
}

// ParsePcmType parses the names produced by String.
func ParsePcmType(s string) (PcmType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllPcmTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return PcmType{}, fmt.Errorf("%w: %q", ErrUnknownPcmType, s)
}
