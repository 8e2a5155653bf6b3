// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/utils"
)

// Write encodes src as a PCM WAV file with the given bit depth (16 or 24)
// and returns the number of frames written. The RIFF sizes are patched on
// completion, which is why w must be seekable.
func Write(w io.WriteSeeker, src audio.Source, bits int) (int, error) {
	if bits != 16 && bits != 24 {
		return 0, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, bits)
	}

	channels := src.Channels()
	if channels < 1 {
		return 0, audio.ErrNoChannels
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), bits, channels, formatPCM)

	size := max(src.BufSize(), channels)
	floats := make([]float32, size-size%channels)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, len(floats)),
		SourceBitDepth: bits,
	}

	samples := 0
	for {
		n, err := src.ReadSamples(floats)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, x := range floats[:n] {
				buf.Data[i] = int(utils.FloatToSample(x, bits))
			}
			if werr := enc.Write(buf); werr != nil {
				return samples / channels, fmt.Errorf("encoding wav: %w", werr)
			}
			samples += n
		}

		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return samples / channels, fmt.Errorf("reading source: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return samples / channels, fmt.Errorf("finishing wav: %w", err)
	}

	return samples / channels, nil
}
