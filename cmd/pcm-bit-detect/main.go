// SPDX-License-Identifier: EPL-2.0

// Command pcm-bit-detect guesses the encoding of raw stereo PCM files.
//
// Usage:
//
//	pcm-bit-detect [options] [file ...]
//
// Without file arguments the eight canonical test files (test-s16.pcm …
// test-u24be.pcm) in the current directory are examined. With -verify the
// arguments are WAV or AIFF files whose header is checked against the
// detector instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	pcmbitdetect "github.com/xkr47/pcm-bit-detect"
	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/pcm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status: 0 when every
// file was processed, 1 when any failed, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "pcm-bit-detect: ", 0)

	fs := flag.NewFlagSet("pcm-bit-detect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pcm-bit-detect [options] [file ...]\n\n")
		fmt.Fprintf(stderr, "Guess sample width, signedness and byte order of raw stereo PCM.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	cfg := detect.DefaultConfig()
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "minimum best/runner-up score ratio for a verdict")
	fs.IntVar(&cfg.BufferSize, "buffer", cfg.BufferSize, "read buffer size in bytes")
	workers := fs.Int("j", 1, fmt.Sprintf("files to process in parallel (this machine has %d CPUs)", runtime.NumCPU()))
	verbose := fs.Bool("v", false, "print the difference averages and all eight scores")
	verify := fs.Bool("verify", false, "treat arguments as WAV/AIFF files and check their declared type")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if *verify {
			fs.Usage()
			return 2
		}
		for _, t := range detect.AllPcmTypes() {
			paths = append(paths, pcm.FileName(t))
		}
	}

	if *verify {
		return runVerify(paths, cfg, *verbose, stdout, logger)
	}

	failed := false
	results := pcmbitdetect.DetectFiles(paths, pcmbitdetect.Options{Config: cfg, Workers: *workers})
	for _, r := range results {
		if r.Err != nil {
			logger.Print(r.Err)
			failed = true
			continue
		}
		if *verbose {
			printDetails(stdout, r.Path, r.Verdict)
		}
		printVerdict(stdout, r.Path, r.Verdict)
	}

	if failed {
		return 1
	}
	return 0
}

func runVerify(paths []string, cfg detect.Config, verbose bool, stdout io.Writer, logger *log.Logger) int {
	failed := false
	for _, path := range paths {
		res, err := pcmbitdetect.Verify(path, cfg)
		if err != nil {
			logger.Print(err)
			failed = true
			continue
		}
		if verbose {
			printDetails(stdout, path, res.Verdict)
		}

		status := "ok"
		if !res.Match {
			status = "MISMATCH"
			failed = true
		}
		detected := "inconclusive"
		if res.Verdict.Conclusive {
			detected = res.Verdict.Type.String()
		}
		fmt.Fprintf(stdout, "%s: declared %v, detected %s: %s\n", path, res.Declared, detected, status)
	}

	if failed {
		return 1
	}
	return 0
}
