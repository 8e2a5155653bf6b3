// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files through
// github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM 16-bit and 24-bit, signed little-endian
//   - WAVE_FORMAT_PCM and WAVE_FORMAT_EXTENSIBLE headers
//   - Any channel count and sample rate
//
// # Decoding
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, wav.ErrUnsupportedBitDepth) etc.
//	}
//	declared := src.(audio.Typed).PcmType() // detect.S16LE or detect.S24LE
//
// The returned source is an audio.Typed, so callers can compare what the
// header claims with what the detector finds in the sample data. Readers
// that cannot seek are buffered in memory first.
//
// # Writing
//
// Write encodes any audio.Source at 16 or 24 bits:
//
//	f, _ := os.Create("reference.wav")
//	frames, err := wav.Write(f, src, 24)
//
// The destination must be an io.WriteSeeker because the RIFF chunk sizes
// are patched once the data has been written.
package wav
