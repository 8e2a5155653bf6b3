// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/formats/aiff"
	"github.com/xkr47/pcm-bit-detect/internal/audiotest"
)

// ExampleDecoder_Decode_bigEndian shows that AIFF declares big-endian
// samples.
func ExampleDecoder_Decode_bigEndian() {
	dir, err := os.MkdirTemp("", "aiff-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	f, err := os.Create(filepath.Join(dir, "tone.aiff"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer f.Close()

	if _, err := aiff.Write(f, audiotest.FixtureSource(480), 16); err != nil {
		fmt.Println("error:", err)
		return
	}

	_, _ = f.Seek(0, 0)
	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Channels: %d\n", src.Channels())
	fmt.Printf("Encoding: %v\n", src.(audio.Typed).PcmType())
	// Output:
	// Channels: 2
	// Encoding: s16be
}
