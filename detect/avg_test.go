// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"math"
	"testing"
)

func TestAvg_FirstSampleOnlySeeds(t *testing.T) {
	t.Parallel()

	var a Avg
	a.Add(100)

	if a.Count() != 0 {
		t.Errorf("Count() = %d, want 0", a.Count())
	}
	if a.DiffSum() != 0 {
		t.Errorf("DiffSum() = %d, want 0", a.DiffSum())
	}
	if got := a.DiffAvg(); got != 0 {
		t.Errorf("DiffAvg() = %v, want 0", got)
	}
}

func TestAvg_DiffAvg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []int8
		count   uint32
		sum     uint64
		want    float64
	}{
		{name: "empty", samples: nil, count: 0, sum: 0, want: 0},
		{name: "constant", samples: []int8{7, 7, 7, 7}, count: 3, sum: 0, want: 0},
		{name: "ramp", samples: []int8{0, 1, 2, 3, 4}, count: 4, sum: 4, want: 1},
		{name: "alternating", samples: []int8{-5, 5, -5}, count: 2, sum: 20, want: 10},
		{name: "full swing", samples: []int8{-128, 127}, count: 1, sum: 255, want: 255},
		{name: "full swing back", samples: []int8{127, -128, 127}, count: 2, sum: 510, want: 255},
		{name: "first sample not against zero", samples: []int8{100, 101}, count: 1, sum: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a Avg
			for _, v := range tt.samples {
				a.Add(v)
			}

			if a.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", a.Count(), tt.count)
			}
			if a.DiffSum() != tt.sum {
				t.Errorf("DiffSum() = %d, want %d", a.DiffSum(), tt.sum)
			}
			if got := a.DiffAvg(); got != tt.want {
				t.Errorf("DiffAvg() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAvg_DiffSumBeyond32Bits feeds enough full-swing samples to push the
// sum past math.MaxUint32.
func TestAvg_DiffSumBeyond32Bits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long accumulation in short mode")
	}
	t.Parallel()

	const n = 17_000_000

	var a Avg
	for i := range n {
		if i%2 == 0 {
			a.Add(-128)
		} else {
			a.Add(127)
		}
	}

	want := uint64(n-1) * 255
	if want <= math.MaxUint32 {
		t.Fatalf("test setup: %d does not exceed 32 bits", want)
	}
	if a.DiffSum() != want {
		t.Errorf("DiffSum() = %d, want %d", a.DiffSum(), want)
	}
	if got := a.DiffAvg(); got != 255 {
		t.Errorf("DiffAvg() = %v, want 255", got)
	}
}

func TestAvg2_Lockstep(t *testing.T) {
	t.Parallel()

	var p Avg2
	p.Add(0, 10)
	p.Add(4, 10)
	p.Add(8, -10)

	if got := p.Channel(Left).DiffAvg(); got != 4 {
		t.Errorf("left DiffAvg() = %v, want 4", got)
	}
	if got := p.Channel(Right).DiffAvg(); got != 10 {
		t.Errorf("right DiffAvg() = %v, want 10", got)
	}
	if p.L.Count() != p.R.Count() {
		t.Errorf("channel counts differ: %d vs %d", p.L.Count(), p.R.Count())
	}
}

func TestChannel_String(t *testing.T) {
	t.Parallel()

	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("Channel strings = %q, %q", Left, Right)
	}
}

func TestAvg_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	var a Avg
	allocs := testing.AllocsPerRun(1000, func() {
		a.Add(3)
		_ = a.DiffAvg()
	})

	if allocs > 0 {
		t.Errorf("Avg allocated %v times, want 0", allocs)
	}
}

func BenchmarkAvg_Add(b *testing.B) {
	var a Avg

	b.ReportAllocs()

	for i := range b.N {
		a.Add(int8(i))
	}
}
