// SPDX-License-Identifier: EPL-2.0

package pcmbitdetect

import (
	"errors"
	"io"
	"testing"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/internal/audiotest"
)

// untypedDecoder hands out a source without a declared PcmType, the way the
// lossy decoders do.
type untypedDecoder struct{}

func (untypedDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.FixtureSource(10), nil
}

func TestVerify_NoDeclaredType(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register("fake", untypedDecoder{})

	d, err := detect.New(detect.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	path := audiotest.WriteTemp(t, "input.fake", []byte{0})
	if _, err := verify(reg, d, path); !errors.Is(err, ErrNoDeclaredType) {
		t.Errorf("verify() error = %v, want ErrNoDeclaredType", err)
	}
}
