// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-audio plumbing used to produce and
// cross-check raw PCM.
//
// # Source Interface
//
// Decoders hand out a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Containers that
// state their sample encoding (WAV, AIFF) return a Typed source, whose
// PcmType is what the header claims.
//
// # Channel Layout
//
// The detector works on stereo streams. StereoMixer turns mono into two
// identical channels and drops everything past the second channel of wider
// layouts:
//
//	stereo := audio.NewStereoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Format Registry
//
// Decoders are registered by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("input.WAV")
//
// Lookup fails with an *UnsupportedFormatError wrapping ErrUnsupportedFormat.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
