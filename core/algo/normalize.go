// Package algo has the pure scoring, classification and ranking logic.
// Every function here is deterministic and safe for concurrent use.
package algo

// NeutralScore is returned when a range is degenerate.
const NeutralScore = 50.0

// NormalizeInverse maps a raw value onto a 0-100 scale where the range minimum
// scores 100 and the maximum scores 0. Values outside the range extrapolate
// linearly and are not clamped.
func NormalizeInverse(value, minVal, maxVal float64) float64 {
	if minVal == maxVal {
		return NeutralScore
	}
	return 100 - ((value-minVal)/(maxVal-minVal))*100
}
