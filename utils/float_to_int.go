// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToSample scales x from [-1, 1] to a signed integer sample of the given
// bit width. Out of range input is clamped.
func FloatToSample(x float32, bits int) int32 {
	full := float64(int64(1) << (bits - 1))

	v := math.Round(float64(x) * full)
	if math.IsNaN(v) {
		return 0
	}
	if v > full-1 {
		v = full - 1
	} else if v < -full {
		v = -full
	}

	return int32(v)
}

// SampleToFloat is the inverse of FloatToSample. Both directions use the
// same power-of-two scale, so 16 and 24 bit samples survive a round trip.
func SampleToFloat(v int32, bits int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bits-1)))
}
