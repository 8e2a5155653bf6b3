// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// Sine is a Source producing a pure tone of fixed length. Channel c leads
// channel 0 by c*phase radians.
type Sine struct {
	rate      int
	channels  int
	frames    int
	frequency float64
	amplitude float64
	phase     float64
	pos       int
}

func NewSine(rate, channels, frames int, frequency, amplitude, phase float64) *Sine {
	return &Sine{
		rate:      rate,
		channels:  channels,
		frames:    frames,
		frequency: frequency,
		amplitude: amplitude,
		phase:     phase,
	}
}

func (s *Sine) SampleRate() int { return s.rate }
func (s *Sine) Channels() int   { return s.channels }
func (s *Sine) BufSize() int    { return 4096 }
func (s *Sine) Close() error    { return nil }

func (s *Sine) ReadSamples(dst []float32) (int, error) {
	if s.channels < 1 {
		return 0, ErrNoChannels
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		t := float64(s.pos+f) / float64(s.rate)
		for ch := range s.channels {
			dst[f*s.channels+ch] = float32(s.amplitude * math.Sin(2*math.Pi*s.frequency*t+float64(ch)*s.phase))
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
