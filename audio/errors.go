// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNoChannels        = errors.New("source has no channels")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// UnsupportedFormatError is returned by Registry.Lookup when no decoder is
// registered for a file extension.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("%s: %v (no extension)", e.Path, ErrUnsupportedFormat)
	}
	return fmt.Sprintf("%s: %v %q", e.Path, ErrUnsupportedFormat, e.Ext)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
