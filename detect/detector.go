// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// DefaultThreshold is the minimum best/runner-up score ratio for a
// conclusive verdict.
const DefaultThreshold = 4.0

// DefaultBufferSize is the read buffer placed in front of the input.
const DefaultBufferSize = 64 * 1024

// Config tunes a Detector.
type Config struct {
	// Threshold is the minimum best/runner-up score ratio to accept a verdict.
	Threshold float64
	// BufferSize is the size of the buffered reader wrapped around inputs.
	// Zero selects DefaultBufferSize.
	BufferSize int
}

// DefaultConfig returns the configuration used by the package-level helpers.
func DefaultConfig() Config {
	return Config{
		Threshold:  DefaultThreshold,
		BufferSize: DefaultBufferSize,
	}
}

// Validate reports whether c can be used.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold < 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.Threshold)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBufferSize, c.BufferSize)
	}
	return nil
}

// Detector classifies raw PCM streams. It holds no per-stream state, so a
// single Detector may be used from several goroutines at once.
type Detector struct {
	cfg Config
}

// New returns a Detector for cfg.
func New(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	return &Detector{cfg: cfg}, nil
}

// Config returns the configuration d was built with.
func (d *Detector) Config() Config { return d.cfg }

// Detect streams r to the end and scores it. A trailing partial block is
// ignored; input shorter than one block yields an inconclusive verdict with
// all scores at zero.
func (d *Detector) Detect(r io.Reader) (*Verdict, error) {
	bank := NewBank()
	br := bufio.NewReaderSize(r, d.cfg.BufferSize)

	var block [BlockSize]byte
	for {
		_, err := io.ReadFull(br, block[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading pcm data: %w", err)
		}
		if err := bank.AddBlock(block[:]); err != nil {
			return nil, err
		}
	}

	return d.verdict(bank), nil
}

// Verdict scores whatever bank has ingested so far. It is meant for callers
// that feed a Bank through its io.Writer side.
func (d *Detector) Verdict(bank *Bank) *Verdict {
	return d.verdict(bank)
}

func (d *Detector) verdict(bank *Bank) *Verdict {
	stats := bank.Stats()
	v := Decide(Score(stats), d.cfg.Threshold)
	v.Stats = stats
	return &v
}

// DetectFile opens path and runs Detect on it. Anything that is not a
// non-empty regular file is rejected before a single byte is read.
func (d *Detector) DetectFile(path string) (*Verdict, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	v, err := d.Detect(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

var defaultDetector = &Detector{cfg: DefaultConfig()}

// Detect runs a Detector with DefaultConfig on r.
func Detect(r io.Reader) (*Verdict, error) { return defaultDetector.Detect(r) }

// DetectFile runs a Detector with DefaultConfig on the file at path.
func DetectFile(path string) (*Verdict, error) { return defaultDetector.DetectFile(path) }
