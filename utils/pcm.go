// SPDX-License-Identifier: EPL-2.0

package utils

// PCMFullScale returns the full-scale magnitude of signed fixed-point
// samples at the given bit depth, e.g. 8388608 for 24-bit.
func PCMFullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// PCMToFloat normalizes a signed fixed-point sample to [-1, 1).
func PCMToFloat(v int, bitDepth int) float64 {
	return float64(v) / PCMFullScale(bitDepth)
}

// FloatToPCM clamps x to [-1, 1] and rescales it to a signed
// fixed-point sample at the given bit depth.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use full-scale-1 for the positive limit to avoid overflow.
	full := PCMFullScale(bitDepth)
	v := x * full
	max := full - 1
	if v > max {
		v = max
	}
	return int(v)
}
