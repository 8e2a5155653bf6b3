// SPDX-License-Identifier: EPL-2.0

package detect

import (
	"math"
	"sort"
)

// hypothesis describes how one PcmType is scored: msb is the byte slot that
// holds the most significant byte under that type, ref the slot used as the
// noise reference.
type hypothesis struct {
	typ PcmType
	msb int
	ref int
}

var hypotheses16 = [...]hypothesis{
	{typ: S16LE, msb: 1, ref: 0},
	{typ: S16BE, msb: 0, ref: 1},
	{typ: U16LE, msb: 1, ref: 0},
	{typ: U16BE, msb: 0, ref: 1},
}

var hypotheses24 = [...]hypothesis{
	{typ: S24LE, msb: 2, ref: 1},
	{typ: S24BE, msb: 0, ref: 1},
	{typ: U24LE, msb: 2, ref: 1},
	{typ: U24BE, msb: 0, ref: 1},
}

// score rates how much the msb slot of h looks like the top byte of audio.
// Under the matching signedness the top byte of a real signal moves slowly,
// while reading it with the other signedness makes every zero crossing jump
// by ~255.
func (h hypothesis) score(v [numInterpretations][]float64) float64 {
	sig := BitToggled
	if h.typ.Signed {
		sig = AsIs
	}
	den := v[sig][h.msb]
	if den <= 0 {
		return 0
	}
	s := v[AsIs][h.ref] / den * v[sig.opposite()][h.msb]
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}

// Repaired returns the 24-bit grid of one channel after substituting the
// middle byte for an outer byte that never moved. A 16-bit signal padded into
// 24-bit slots has a constant low byte and would otherwise score as noise.
func (s Stats) Repaired(ch Channel) [numInterpretations][slots24]float64 {
	v := s.V24[ch]
	for interp := range numInterpretations {
		row := &v[interp]
		if row[0] <= 0 {
			row[0] = row[1]
		}
		if row[2] <= 0 {
			row[2] = row[1]
		}
	}
	return v
}

// Results holds the confidence score of every PcmType. Zero means the
// hypothesis had no usable evidence.
type Results struct {
	S16LE, S16BE, U16LE, U16BE float64
	S24LE, S24BE, U24LE, U24BE float64
}

func (r *Results) field(t PcmType) *float64 {
	switch t {
	case S16LE:
		return &r.S16LE
	case S16BE:
		return &r.S16BE
	case U16LE:
		return &r.U16LE
	case U16BE:
		return &r.U16BE
	case S24LE:
		return &r.S24LE
	case S24BE:
		return &r.S24BE
	case U24LE:
		return &r.U24LE
	default:
		return &r.U24BE
	}
}

// Score returns the score of t.
func (r Results) Score(t PcmType) float64 { return *r.field(t) }

// Set stores the score of t.
func (r *Results) Set(t PcmType, score float64) { *r.field(t) = score }

// Candidate is a PcmType together with its score.
type Candidate struct {
	Type  PcmType
	Score float64
}

// Ranked returns all candidates sorted by descending score; equal scores
// keep the canonical order of AllPcmTypes.
func (r Results) Ranked() []Candidate {
	types := AllPcmTypes()
	out := make([]Candidate, len(types))
	for i, t := range types {
		out[i] = Candidate{Type: t, Score: r.Score(t)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Score evaluates all eight hypotheses against s.
func Score(s Stats) Results {
	var r Results

	v16 := [numInterpretations][]float64{s.V16[AsIs][:], s.V16[BitToggled][:]}
	for _, h := range hypotheses16 {
		r.Set(h.typ, h.score(v16))
	}

	left, right := s.Repaired(Left), s.Repaired(Right)
	vl := [numInterpretations][]float64{left[AsIs][:], left[BitToggled][:]}
	vr := [numInterpretations][]float64{right[AsIs][:], right[BitToggled][:]}
	for _, h := range hypotheses24 {
		// Both channels have to back the hypothesis.
		r.Set(h.typ, min(h.score(vl), h.score(vr)))
	}

	return r
}

// Verdict is the outcome of one detection. Type always names the best
// candidate; when Conclusive is false it is a guess, since Best and RunnerUp
// were too close to call.
type Verdict struct {
	Type       PcmType
	Conclusive bool
	Best       Candidate
	RunnerUp   Candidate
	Results    Results
	Stats      Stats
}

// Ratio returns Best.Score / RunnerUp.Score. It is +Inf when only the best
// candidate has any evidence and 0 when none has.
func (v Verdict) Ratio() float64 {
	return ratio(v.Best.Score, v.RunnerUp.Score)
}

func ratio(best, second float64) float64 {
	switch {
	case best <= 0:
		return 0
	case second <= 0:
		return math.Inf(1)
	default:
		return best / second
	}
}

// Decide ranks r and accepts the best candidate when it beats the runner-up
// by at least threshold.
func Decide(r Results, threshold float64) Verdict {
	ranked := r.Ranked()
	v := Verdict{
		Type:     ranked[0].Type,
		Best:     ranked[0],
		RunnerUp: ranked[1],
		Results:  r,
	}
	v.Conclusive = v.Best.Score > 0 && v.Ratio() >= threshold
	return v
}
