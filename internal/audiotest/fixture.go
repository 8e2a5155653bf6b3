// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/pcm"
	"github.com/xkr47/pcm-bit-detect/utils"
)

// Parameters of the reference fixture: a 200 Hz tone at about -20 dBFS,
// 48 kHz stereo, right channel half a radian ahead of the left one.
const (
	FixtureRate      = 48000
	FixtureFrequency = 200.0
	FixtureAmplitude = 0.1
	FixturePhase     = 0.5
	FixtureFrames    = 4800
)

// FixtureSource returns the reference tone as a stereo Source.
func FixtureSource(frames int) *MockSource {
	return NewSineSource(FixtureRate, 2, frames, FixtureFrequency, FixtureAmplitude, FixturePhase)
}

// Fixture renders frames stereo frames of the reference tone as raw PCM of
// type t.
func Fixture(t detect.PcmType, frames int) []byte {
	var buf bytes.Buffer
	if _, err := pcm.Render(&buf, FixtureSource(frames), t); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// PaddedFixture renders the reference tone quantized to 16 bits and stored
// as signed 24-bit little-endian with an all-zero low byte.
func PaddedFixture(frames int) []byte {
	src := FixtureSource(frames)
	samples := make([]float32, frames*2)
	n, _ := src.ReadSamples(samples)

	ints := make([]int32, n)
	for i, x := range samples[:n] {
		ints[i] = utils.FloatToSample(x, 16) << 8
	}

	var buf bytes.Buffer
	if err := pcm.NewWriter(&buf, detect.S24LE).WriteInts(ints); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// WriteTemp stores data in a fresh temporary directory and returns the path.
func WriteTemp(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}
