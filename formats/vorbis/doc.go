// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float, so the source is a plain audio.Source
// with no declared PCM type. It serves as a higher-resolution input for
// generating 24-bit test data:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	n, err := pcm.Render(out, src, detect.S24BE)
//
// ReadSamples only hands whole frames to the decoder, so dst shorter than one
// frame fails with audio.ErrInvalidDstSize. Streams with more than two
// channels keep their layout; pcm.Render keeps the first two.
package vorbis
