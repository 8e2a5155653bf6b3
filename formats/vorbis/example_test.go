// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/formats/vorbis"
	"github.com/xkr47/pcm-bit-detect/pcm"
)

// Example renders a decoded Ogg Vorbis file as raw unsigned 24-bit big-endian
// PCM, ready to be fed to the detector.
func Example() {
	in, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := vorbis.Decoder{}.Decode(bufio.NewReader(in))
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(pcm.FileName(detect.U24BE))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	n, err := pcm.Render(out, src, detect.U24BE)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d bytes at %d Hz\n", n, src.SampleRate())
}

// ExampleDecoder_Decode_errorHandling shows the error for data that is not
// Ogg Vorbis.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("not an ogg file")))
	if err != nil {
		fmt.Println("decode failed")
		return
	}
	fmt.Println("decoded")
	// Output:
	// decode failed
}
