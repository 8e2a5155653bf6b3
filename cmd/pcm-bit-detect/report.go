// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/xkr47/pcm-bit-detect/detect"
)

func printVerdict(w io.Writer, path string, v *detect.Verdict) {
	if !v.Conclusive {
		fmt.Fprintf(w, "%s: inconclusive, best %v (%.4g) vs %v (%.4g)\n",
			path, v.Best.Type, v.Best.Score, v.RunnerUp.Type, v.RunnerUp.Score)
		return
	}

	signedness, endian := "unsigned", "little"
	if v.Type.Signed {
		signedness = "signed"
	}
	if v.Type.BigEndian {
		endian = "big"
	}
	fmt.Fprintf(w, "%s: %v (%s %d-bit %s-endian, ratio %.3g)\n",
		path, v.Type, signedness, v.Type.Bits(), endian, v.Ratio())
}

// printDetails dumps the repaired statistics and every score.
func printDetails(w io.Writer, path string, v *detect.Verdict) {
	s := v.Stats
	fmt.Fprintf(w, "---- %s (%d blocks)\n", path, s.Blocks)
	for _, in := range []detect.Interpretation{detect.AsIs, detect.BitToggled} {
		fmt.Fprintf(w, "v16 %-12v %8.3f\n", in, s.V16[in])
	}
	for _, ch := range []detect.Channel{detect.Left, detect.Right} {
		rep := s.Repaired(ch)
		for _, in := range []detect.Interpretation{detect.AsIs, detect.BitToggled} {
			fmt.Fprintf(w, "v24 %-5v %-12v %8.3f\n", ch, in, rep[in])
		}
	}
	for _, c := range v.Results.Ranked() {
		fmt.Fprintf(w, "  %v %12.4f\n", c.Type, c.Score)
	}
}
