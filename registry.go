// SPDX-License-Identifier: EPL-2.0

package pcmbitdetect

import (
	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/formats/aiff"
	"github.com/xkr47/pcm-bit-detect/formats/mp3"
	"github.com/xkr47/pcm-bit-detect/formats/vorbis"
	"github.com/xkr47/pcm-bit-detect/formats/wav"
)

// DefaultRegistry returns a registry with every container decoder of this
// module, keyed by the usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aifc", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}
