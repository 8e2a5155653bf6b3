// SPDX-License-Identifier: EPL-2.0

package detect

// Avg tracks the mean absolute difference between consecutive samples fed
// into one byte slot.
type Avg struct {
	count   uint32
	diffsum uint64
	last    int8
	primed  bool
}

// Add feeds the next sample. The first sample only seeds last since it has
// no predecessor to be compared with.
func (a *Avg) Add(v int8) {
	if a.primed {
		d := int16(v) - int16(a.last)
		if d < 0 {
			d = -d
		}
		a.diffsum += uint64(d)
		a.count++
	}
	a.last = v
	a.primed = true
}

// Count returns the number of differences accumulated so far.
func (a *Avg) Count() uint32 { return a.count }

// DiffSum returns the running sum of absolute differences.
func (a *Avg) DiffSum() uint64 { return a.diffsum }

// DiffAvg returns DiffSum/Count, or 0 while no difference has been seen.
func (a *Avg) DiffAvg() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.diffsum) / float64(a.count)
}

// Channel is one side of a stereo frame.
type Channel int

const (
	Left Channel = iota
	Right
)

func (c Channel) String() string {
	if c == Right {
		return "right"
	}
	return "left"
}

// Avg2 is a pair of accumulators for the left and right channel of the same
// byte slot.
type Avg2 struct {
	L, R Avg
}

// Add feeds one sample per channel.
func (p *Avg2) Add(l, r int8) {
	p.L.Add(l)
	p.R.Add(r)
}

// Channel returns the accumulator of c.
func (p *Avg2) Channel(c Channel) *Avg {
	if c == Right {
		return &p.R
	}
	return &p.L
}
