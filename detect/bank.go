// SPDX-License-Identifier: EPL-2.0

package detect

// BlockSize is the analysis unit in bytes: three 16-bit stereo frames or two
// 24-bit stereo frames.
const BlockSize = 12

const (
	frame16 = 4 // 16-bit stereo frame
	frame24 = 6 // 24-bit stereo frame

	slots16 = 2
	slots24 = 3
)

// Interpretation is one of the two parallel readings of every raw byte.
type Interpretation int

const (
	// AsIs reads the byte as a two's-complement int8.
	AsIs Interpretation = iota
	// BitToggled reads the byte with bit 7 flipped, which turns an unsigned
	// encoding into a signed one.
	BitToggled

	numInterpretations = 2
)

func (i Interpretation) String() string {
	if i == BitToggled {
		return "bit7-toggled"
	}
	return "as-is"
}

// opposite returns the other interpretation.
func (i Interpretation) opposite() Interpretation { return 1 - i }

// Bank owns every accumulator needed to score one stream. The zero value is
// ready to use; a Bank must not be shared between streams.
type Bank struct {
	a16 [numInterpretations][slots16]Avg
	a24 [numInterpretations][slots24]Avg2

	blocks  uint64
	pending [BlockSize]byte
	npend   int
}

// NewBank returns an empty Bank.
func NewBank() *Bank { return &Bank{} }

// AddBlock ingests exactly one BlockSize block.
func (b *Bank) AddBlock(block []byte) error {
	if len(block) != BlockSize {
		return ErrBlockSize
	}

	var bufs [numInterpretations][BlockSize]int8
	for i, v := range block {
		bufs[AsIs][i] = int8(v)
		bufs[BitToggled][i] = int8(v ^ 0x80)
	}

	for interp := range Interpretation(numInterpretations) {
		buf := &bufs[interp]

		// Only the first channel of each 16-bit frame is sampled.
		for frame := range BlockSize / frame16 {
			for slot := range slots16 {
				b.a16[interp][slot].Add(buf[frame*frame16+slot])
			}
		}

		for frame := range BlockSize / frame24 {
			base := frame * frame24
			for slot := range slots24 {
				// The middle byte never decides signedness.
				if interp == BitToggled && slot == 1 {
					continue
				}
				b.a24[interp][slot].Add(buf[base+slot], buf[base+slot+slots24])
			}
		}
	}

	b.blocks++
	return nil
}

// Write implements io.Writer. Bytes that do not complete a block are kept
// until the next call; whatever is left over when Stats is called is ignored.
func (b *Bank) Write(p []byte) (int, error) {
	n := len(p)

	if b.npend > 0 {
		c := copy(b.pending[b.npend:], p)
		b.npend += c
		p = p[c:]
		if b.npend < BlockSize {
			return n, nil
		}
		if err := b.AddBlock(b.pending[:]); err != nil {
			return n - len(p), err
		}
		b.npend = 0
	}

	for len(p) >= BlockSize {
		if err := b.AddBlock(p[:BlockSize]); err != nil {
			return n - len(p), err
		}
		p = p[BlockSize:]
	}

	b.npend = copy(b.pending[:], p)
	return n, nil
}

// Blocks returns the number of whole blocks ingested.
func (b *Bank) Blocks() uint64 { return b.blocks }

// Stats snapshots the difference averages of every slot.
func (b *Bank) Stats() Stats {
	s := Stats{Blocks: b.blocks}
	for interp := range numInterpretations {
		for slot := range slots16 {
			s.V16[interp][slot] = b.a16[interp][slot].DiffAvg()
		}
		for slot := range slots24 {
			for _, ch := range []Channel{Left, Right} {
				s.V24[ch][interp][slot] = b.a24[interp][slot].Channel(ch).DiffAvg()
			}
		}
	}
	return s
}

// Stats holds the difference averages a Bank produced, indexed as
// V16[interpretation][slot] and V24[channel][interpretation][slot].
type Stats struct {
	V16    [numInterpretations][slots16]float64
	V24    [2][numInterpretations][slots24]float64
	Blocks uint64
}
