// SPDX-License-Identifier: EPL-2.0

package pcmbitdetect

import "errors"

// ErrNoDeclaredType is returned by Verify for containers whose header does
// not state a raw sample encoding.
var ErrNoDeclaredType = errors.New("container does not declare a pcm type")
