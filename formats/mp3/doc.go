// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// MP3 is lossy and carries no raw sample encoding, so the source is a plain
// audio.Source rather than an audio.Typed. It is used to produce test input:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	n, err := pcm.Render(out, src, detect.S24LE)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0], from signed 16-bit
//   - Channels: always 2; go-mp3 duplicates mono streams
//   - Sample rate: whatever the stream declares
package mp3
