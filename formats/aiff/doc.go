// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files through github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - PCM 16-bit and 24-bit, signed big-endian
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	declared := source.(audio.Typed).PcmType() // detect.S16BE or detect.S24BE
//
// Samples come out as float32 values in [-1.0, 1.0]. Both widths survive the
// float conversion exactly, so rendering them back with pcm.Render in the
// declared type reproduces the SSND chunk byte for byte.
//
// # Writing AIFF Files
//
//	f, _ := os.Create("reference.aiff")
//	frames, err := aiff.Write(f, source, 24)
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: Samples are neither 16 nor 24 bits wide
//   - ErrUnsupportedAiffLayout: The COMM chunk describes no channels
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Originated on Apple platforms (WAV on Windows)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// # Limitations
//
// AIFF-C files with compressed or little-endian ("sowt") sample data are
// reported as big-endian PCM; go-audio does not expose the compression type.
package aiff
