// SPDX-License-Identifier: EPL-2.0

package detect

import "errors"

var (
	ErrBlockSize         = errors.New("block must be exactly 12 bytes")
	ErrInvalidThreshold  = errors.New("threshold must be a finite number >= 1")
	ErrInvalidBufferSize = errors.New("buffer size must not be negative")
	ErrNotRegularFile    = errors.New("not a regular file")
	ErrEmptyFile         = errors.New("file is empty")
	ErrUnknownPcmType    = errors.New("unknown pcm type")
)
