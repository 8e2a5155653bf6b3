// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/utils"
)

// Writer encodes interleaved samples as headerless PCM of one type.
type Writer struct {
	w       io.Writer
	t       detect.PcmType
	buf     []byte
	written int64
}

func NewWriter(w io.Writer, t detect.PcmType) *Writer {
	return &Writer{
		w:   w,
		t:   t,
		buf: make([]byte, 0, 8192),
	}
}

// PcmType returns the encoding w produces.
func (w *Writer) PcmType() detect.PcmType { return w.t }

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.written }

// WriteInts encodes integer samples that already fit the sample width.
func (w *Writer) WriteInts(samples []int32) error {
	if len(samples) == 0 {
		return nil
	}

	size := w.t.BytesPerSample()
	need := len(samples) * size
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	w.buf = w.buf[:need]

	for i, v := range samples {
		Encode(w.buf[i*size:], v, w.t)
	}

	n, err := w.w.Write(w.buf)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("writing %v samples: %w", w.t, err)
	}
	return nil
}

// WriteSamples quantizes float samples in [-1, 1] to the sample width and
// encodes them.
func (w *Writer) WriteSamples(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	size := w.t.BytesPerSample()
	bits := w.t.Bits()
	need := len(samples) * size
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	w.buf = w.buf[:need]

	for i, x := range samples {
		Encode(w.buf[i*size:], utils.FloatToSample(x, bits), w.t)
	}

	n, err := w.w.Write(w.buf)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("writing %v samples: %w", w.t, err)
	}
	return nil
}

// Render streams src into w as stereo PCM of type t and returns the number
// of bytes written. Mono sources are duplicated into both channels.
func Render(w io.Writer, src audio.Source, t detect.PcmType) (int64, error) {
	stereo := audio.NewStereoMixer(src)
	pw := NewWriter(w, t)

	size := max(src.BufSize(), 2)
	buf := make([]float32, size-size%2)

	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			if werr := pw.WriteSamples(buf[:n]); werr != nil {
				return pw.Written(), werr
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return pw.Written(), fmt.Errorf("reading source: %w", err)
		}

		if n == 0 {
			// A source that returns nothing without an error has nothing left.
			break
		}
	}

	return pw.Written(), nil
}
