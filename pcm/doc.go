// SPDX-License-Identifier: EPL-2.0

// Package pcm writes headerless PCM in any of the eight encodings the
// detector knows about.
//
// It is the counterpart of package detect: fixtures, reference files and
// container payloads are produced here and fed back to the detector.
//
//	f, _ := os.Create(pcm.FileName(detect.U24BE)) // test-u24be.pcm
//	n, err := pcm.Render(f, source, detect.U24BE)
//
// Render always writes two channels. Encode and Decode work on single
// samples, SwapByteOrder flips the byte order of a whole buffer in place.
package pcm
