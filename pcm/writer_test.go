// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/internal/audiotest"
	"github.com/xkr47/pcm-bit-detect/pcm"
	"github.com/xkr47/pcm-bit-detect/utils"
)

func TestWriter_WriteSamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := pcm.NewWriter(&buf, detect.S16BE)

	if err := w.WriteSamples([]float32{0, 0.5, -1}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}

	want := []byte{0x00, 0x00, 0x40, 0x00, 0x80, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % x, want % x", buf.Bytes(), want)
	}
	if w.Written() != 6 {
		t.Errorf("Written() = %d, want 6", w.Written())
	}
	if w.PcmType() != detect.S16BE {
		t.Errorf("PcmType() = %v", w.PcmType())
	}
}

func TestWriter_WriteInts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := pcm.NewWriter(&buf, detect.U24LE)

	if err := w.WriteInts([]int32{0, -8388608}); err != nil {
		t.Fatalf("WriteInts() error = %v", err)
	}
	if err := w.WriteInts(nil); err != nil {
		t.Fatalf("WriteInts(nil) error = %v", err)
	}

	want := []byte{0x00, 0x00, 0x80, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % x, want % x", buf.Bytes(), want)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriter_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	w := pcm.NewWriter(failingWriter{err: boom}, detect.S16LE)

	if err := w.WriteSamples([]float32{0.1}); !errors.Is(err, boom) {
		t.Errorf("WriteSamples() error = %v, want %v", err, boom)
	}
}

func TestRender_Stereo(t *testing.T) {
	t.Parallel()

	for _, typ := range detect.AllPcmTypes() {
		src := audiotest.FixtureSource(1000)

		var buf bytes.Buffer
		n, err := pcm.Render(&buf, src, typ)
		if err != nil {
			t.Fatalf("%v: Render() error = %v", typ, err)
		}

		wantLen := int64(1000 * 2 * typ.BytesPerSample())
		if n != wantLen || int64(buf.Len()) != wantLen {
			t.Errorf("%v: wrote %d (buffer %d) bytes, want %d", typ, n, buf.Len(), wantLen)
		}

		// Decoding the first right-channel sample gives back the tone.
		src.Reset()
		frame := make([]float32, 2)
		_, _ = src.ReadSamples(frame)
		size := typ.BytesPerSample()
		got := pcm.Decode(buf.Bytes()[size:], typ)
		if want := utils.FloatToSample(frame[1], typ.Bits()); got != want {
			t.Errorf("%v: first right sample = %d, want %d", typ, got, want)
		}
	}
}

func TestRender_MonoIsDuplicated(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 64, 440, 0.5, 0)

	var buf bytes.Buffer
	if _, err := pcm.Render(&buf, src, detect.S16LE); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 64*4 {
		t.Fatalf("rendered %d bytes, want %d", len(data), 64*4)
	}
	for off := 0; off < len(data); off += 4 {
		if !bytes.Equal(data[off:off+2], data[off+2:off+4]) {
			t.Fatalf("frame at %d: channels differ: % x", off, data[off:off+4])
		}
	}
}

func TestRender_SilentSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := pcm.Render(&buf, audiotest.NewSilentSource(8000, 2, 10), detect.U16BE)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if n != 40 {
		t.Errorf("Render() = %d bytes, want 40", n)
	}
	for i := 0; i < len(buf.Bytes()); i += 2 {
		if buf.Bytes()[i] != 0x80 || buf.Bytes()[i+1] != 0x00 {
			t.Fatalf("silence sample %d = % x, want 80 00", i/2, buf.Bytes()[i:i+2])
		}
	}
}
