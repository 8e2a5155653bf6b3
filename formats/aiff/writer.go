// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/utils"
)

// Write encodes src as an AIFF file with 16 or 24-bit samples and returns
// the number of frames written. w must be seekable so the COMM frame count
// and chunk sizes can be filled in at the end.
func Write(w io.WriteSeeker, src audio.Source, bits int) (int, error) {
	if bits != 16 && bits != 24 {
		return 0, fmt.Errorf("%w: got %d bits", ErrUnsupportedBitDepth, bits)
	}

	channels := src.Channels()
	if channels < 1 {
		return 0, audio.ErrNoChannels
	}

	enc := goaiff.NewEncoder(w, src.SampleRate(), bits, channels)

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
				return samples / channels, fmt.Errorf("encoding aiff: %w", werr)
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
		return samples / channels, fmt.Errorf("finishing aiff: %w", err)
	}

	return samples / channels, nil
}
