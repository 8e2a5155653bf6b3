// SPDX-License-Identifier: EPL-2.0

// Command pcm-gen writes the eight canonical raw PCM test files
// (test-s16.pcm … test-u24be.pcm), either from a generated stereo tone or
// from a decoded WAV, AIFF, MP3 or Ogg Vorbis file.
//
// Usage:
//
//	pcm-gen [options]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	pcmbitdetect "github.com/xkr47/pcm-bit-detect"
	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/formats/wav"
	"github.com/xkr47/pcm-bit-detect/pcm"
)

type config struct {
	outDir    string
	input     string
	rate      int
	frames    int
	frequency float64
	amplitude float64
	phase     float64
	types     []detect.PcmType
	wav       bool
	workers   int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "pcm-gen: ", 0)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Print(err)
		}
		return 2
	}

	var mu sync.Mutex
	report := func(format string, a ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(stdout, format, a...)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.workers)

	for _, t := range cfg.types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(cfg.outDir, pcm.FileName(t))
			n, err := writeRaw(cfg, path, t)
			if err != nil {
				return err
			}
			report("%s: %d bytes of %v\n", path, n, t)
			return nil
		})
	}

	if cfg.wav {
		for _, bits := range []int{16, 24} {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(cfg.outDir, fmt.Sprintf("test-s%d.wav", bits))
				frames, err := writeWav(cfg, path, bits)
				if err != nil {
					return err
				}
				report("%s: %d frames at %d bits\n", path, frames, bits)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{}

	fs := flag.NewFlagSet("pcm-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.outDir, "out", ".", "output directory")
	fs.StringVar(&cfg.input, "in", "", "decode this wav/aiff/mp3/ogg file instead of generating a tone")
	fs.IntVar(&cfg.rate, "rate", 48000, "tone sample rate in Hz")
	fs.IntVar(&cfg.frames, "frames", 4800, "tone length in stereo frames")
	fs.Float64Var(&cfg.frequency, "freq", 200, "tone frequency in Hz")
	fs.Float64Var(&cfg.amplitude, "amp", 0.1, "tone peak amplitude, 1 is full scale")
	fs.Float64Var(&cfg.phase, "phase", 0.5, "right channel phase lead in radians")
	types := fs.String("types", "all", "comma separated types to write, e.g. s16le,u24be")
	fs.BoolVar(&cfg.wav, "wav", false, "also write 16 and 24-bit WAV references")
	fs.IntVar(&cfg.workers, "j", 4, "files to write in parallel")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.input == "" {
		if cfg.rate <= 0 || cfg.frames <= 0 {
			return cfg, fmt.Errorf("invalid tone: rate %d, frames %d", cfg.rate, cfg.frames)
		}
		if cfg.amplitude < 0 || cfg.amplitude > 1 {
			return cfg, fmt.Errorf("amplitude %v outside [0, 1]", cfg.amplitude)
		}
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	if *types == "all" {
		cfg.types = detect.AllPcmTypes()
		return cfg, nil
	}
	for _, name := range strings.Split(*types, ",") {
		t, err := detect.ParsePcmType(name)
		if err != nil {
			return cfg, err
		}
		cfg.types = append(cfg.types, t)
	}
	return cfg, nil
}

// openSource returns a fresh source for one output file. Each output gets its
// own decoder so files can be written concurrently.
func openSource(cfg config) (audio.Source, error) {
	if cfg.input == "" {
		return audio.NewSine(cfg.rate, 2, cfg.frames, cfg.frequency, cfg.amplitude, cfg.phase), nil
	}

	decoder, err := pcmbitdetect.DefaultRegistry().Lookup(cfg.input)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", cfg.input, err)
	}

	src, err := decoder.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", cfg.input, err)
	}
	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the underlying file together with the decoder.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

func writeRaw(cfg config, path string, t detect.PcmType) (n int64, err error) {
	src, err := openSource(cfg)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(out)
	n, err = pcm.Render(bw, src, t)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, nil
}

func writeWav(cfg config, path string, bits int) (frames int, err error) {
	src, err := openSource(cfg)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	frames, err = wav.Write(out, audio.NewStereoMixer(src), bits)
	if err != nil {
		return frames, fmt.Errorf("writing %s: %w", path, err)
	}
	return frames, nil
}
