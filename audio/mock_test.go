// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource generates frames from a waveform function. It lives here
// rather than in internal/audiotest because that package imports audio.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	closed      bool
	closeErr    error
	waveform    func(frame int, channel int) float32
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newConstantSource(sampleRate, channels, totalFrames, 0)
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// newLabelledSource encodes frame and channel into every sample so tests can
// tell where a value came from.
func newLabelledSource(channels, totalFrames int) *mockSource {
	return newMockSource(8000, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame*10 + channel)
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return m.closeErr
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite
	if m.generated >= m.totalFrames {
		return framesToWrite * m.channels, io.EOF
	}
	return framesToWrite * m.channels, nil
}

var errBrokenSource = errors.New("broken source")

type brokenSource struct{ mockSource }

func (b *brokenSource) ReadSamples([]float32) (int, error) { return 0, errBrokenSource }

// chunkedSource hands out the samples of a labelled source at most chunk at
// a time, so frames get split across reads.
type chunkedSource struct {
	*mockSource
	samples []float32
	chunk   int
}

func newChunkedSource(channels, totalFrames, chunk int) *chunkedSource {
	m := newLabelledSource(channels, totalFrames)
	all := make([]float32, channels*totalFrames)
	n, _ := m.ReadSamples(all)
	return &chunkedSource{mockSource: m, samples: all[:n], chunk: chunk}
}

func (c *chunkedSource) ReadSamples(dst []float32) (int, error) {
	if len(c.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), c.chunk)], c.samples)
	c.samples = c.samples[n:]
	return n, nil
}
