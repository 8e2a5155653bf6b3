// SPDX-License-Identifier: EPL-2.0

package pcmbitdetect

import (
	"golang.org/x/sync/errgroup"

	"github.com/xkr47/pcm-bit-detect/detect"
)

// Options controls DetectFiles.
type Options struct {
	// Config is handed to detect.New. The zero value is invalid; start from
	// detect.DefaultConfig().
	Config detect.Config
	// Workers is the number of files processed at once. Values below two
	// run the batch sequentially.
	Workers int
}

// FileResult is the outcome for one path. Exactly one of Verdict and Err is
// set.
type FileResult struct {
	Path    string
	Verdict *detect.Verdict
	Err     error
}

// DetectFiles runs the detector on every path and returns one result per
// path, in the same order. An invalid Config is reported on every result.
func DetectFiles(paths []string, opts Options) []FileResult {
	results := make([]FileResult, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	d, err := detect.New(opts.Config)
	if err != nil {
		for i := range results {
			results[i].Err = err
		}
		return results
	}

	if opts.Workers < 2 {
		for i := range results {
			results[i].Verdict, results[i].Err = d.DetectFile(results[i].Path)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for i := range results {
		g.Go(func() error {
			// each goroutine owns results[i]; per-file errors stay in the result
			results[i].Verdict, results[i].Err = d.DetectFile(results[i].Path)
			return nil
		})
	}

	_ = g.Wait()

	return results
}
