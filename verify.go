// SPDX-License-Identifier: EPL-2.0

package pcmbitdetect

import (
	"fmt"
	"os"

	"github.com/xkr47/pcm-bit-detect/audio"
	"github.com/xkr47/pcm-bit-detect/detect"
	"github.com/xkr47/pcm-bit-detect/pcm"
)

// Verification compares the encoding a container header declares with what
// the detector makes of the same samples stored as raw PCM.
type Verification struct {
	Path     string
	Declared detect.PcmType
	Verdict  *detect.Verdict
	// Match is true when the verdict is conclusive and names Declared.
	Match bool
}

// Verify decodes the WAV or AIFF file at path and checks the detector
// against its header. Containers without a declared type fail with
// ErrNoDeclaredType.
func Verify(path string, cfg detect.Config) (*Verification, error) {
	d, err := detect.New(cfg)
	if err != nil {
		return nil, err
	}
	return verify(DefaultRegistry(), d, path)
}

func verify(reg *audio.Registry, d *detect.Detector, path string) (*Verification, error) {
	decoder, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	typed, ok := src.(audio.Typed)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDeclaredType)
	}
	declared := typed.PcmType()

	// Render straight into the bank; nothing is buffered beyond one block.
	bank := detect.NewBank()
	if _, err := pcm.Render(bank, typed, declared); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	v := d.Verdict(bank)

	return &Verification{
		Path:     path,
		Declared: declared,
		Verdict:  v,
		Match:    v.Conclusive && v.Type == declared,
	}, nil
}
