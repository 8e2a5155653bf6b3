// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer presents any Source as two channels: mono is duplicated into
// both sides, stereo passes through and wider layouts keep their first two
// channels.
type StereoMixer struct {
	src Source
	tmp []float32
	// pending is the number of samples of an incomplete source frame kept at
	// the start of tmp for the next read.
	pending int
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved stereo samples. len(dst) must be
// even. Samples of a source frame that was split across two reads are held
// back until the frame is complete.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels < 1 {
		return 0, ErrNoChannels
	}
	if channels == 2 && m.pending == 0 {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	samplesNeeded := frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		grown := make([]float32, max(samplesNeeded, 8192))
		copy(grown, m.tmp[:m.pending])
		m.tmp = grown
	}
	m.tmp = m.tmp[:samplesNeeded]

	var err error
	for m.pending < channels {
		var n int
		n, err = m.src.ReadSamples(m.tmp[m.pending:])
		m.pending += n
		if err != nil || n == 0 {
			break
		}
	}

	got := m.pending / channels
	if got == 0 {
		return 0, err
	}

	switch channels {
	case 1:
		for f := range got {
			dst[f<<1] = m.tmp[f]
			dst[f<<1+1] = m.tmp[f]
		}
	default:
		for f := range got {
			base := f * channels
			dst[f<<1] = m.tmp[base]
			dst[f<<1+1] = m.tmp[base+1]
		}
	}

	m.pending = copy(m.tmp, m.tmp[got*channels:m.pending])

	return got * 2, err
}
