// SPDX-License-Identifier: EPL-2.0

// Package pcmbitdetect guesses the sample format of raw, headerless PCM
// files from byte statistics alone.
//
// The detection engine lives in the detect package; this package adds the
// file-level conveniences used by the command line tools.
//
// # Supported Types
//
// Eight stereo encodings are told apart: signed or unsigned, 16 or 24 bits
// per sample, little or big-endian (s16le, s16be, u16le, u16be, s24le,
// s24be, u24le, u24be). Each file gets either one of them or an inconclusive
// verdict that names the two best candidates.
//
// # Quick Start
//
//	v, err := detect.DetectFile("capture.raw")
//	if err != nil {
//	    // I/O problem
//	}
//	if v.Conclusive {
//	    fmt.Println(v.Type) // e.g. "s24le"
//	}
//
// # Batches
//
// DetectFiles runs many files with one configuration. A failing file is
// reported in its own FileResult and never stops the rest:
//
//	results := pcmbitdetect.DetectFiles(paths, pcmbitdetect.Options{
//	    Config:  detect.DefaultConfig(),
//	    Workers: runtime.NumCPU(),
//	})
//
// With Workers above one, files are processed concurrently through
// golang.org/x/sync/errgroup. Results keep the input order.
//
// # Verifying Containers
//
// WAV and AIFF headers declare their sample encoding. Verify re-encodes the
// payload as raw PCM in that declared type, runs the detector on it and
// reports whether the two agree. This is a cheap end-to-end check of the
// detector against real recordings:
//
//	res, err := pcmbitdetect.Verify("take.wav", detect.DefaultConfig())
//	fmt.Println(res.Declared, res.Verdict.Type, res.Match)
//
// # Supported Containers
//
// DefaultRegistry knows these extensions:
//   - wav, wave (formats/wav, 16 and 24-bit PCM)
//   - aif, aiff, aifc (formats/aiff, 16 and 24-bit PCM)
//   - mp3 (formats/mp3)
//   - ogg, oga (formats/vorbis)
//
// Only WAV and AIFF declare a type, so only they can be verified; the lossy
// formats serve as input for generating test data.
package pcmbitdetect
