// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-conversion helpers shared by the format
// decoders and adapters.
package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping to
// [-1, 1] first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32 in
// [-1, 1).
func Int16ToFloat32(x int16) float32 {
	return float32(x) / 32768.0
}
