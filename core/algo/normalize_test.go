package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInverse(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{"value at minimum", 10, 10, 20, 100},
		{"value at maximum", 20, 10, 20, 0},
		{"midpoint", 15, 10, 20, 50},
		{"below minimum extrapolates above 100", 0, 10, 20, 200},
		{"above maximum extrapolates below 0", 30, 10, 20, -100},
		{"degenerate range", 42, 5, 5, 50},
		{"degenerate range ignores value", -1e9, 0, 0, 50},
		{"negative range", -5, -10, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeInverse(tt.value, tt.min, tt.max), 1e-9)
		})
	}
}

func TestNormalizeInverseMonotonic(t *testing.T) {
	prev := NormalizeInverse(0, 0.3, 60)
	for v := 0.5; v < 80; v += 0.5 {
		cur := NormalizeInverse(v, 0.3, 60)
		assert.Less(t, cur, prev, "value %v", v)
		prev = cur
	}
}

// FuzzNormalizeInverse checks that the normalizer never panics and stays linear.
func FuzzNormalizeInverse(f *testing.F) {
	f.Add(15.0, 10.0, 20.0)
	f.Add(0.0, 0.0, 0.0)
	f.Add(-3.5, 131.0, 18900.0)

	f.Fuzz(func(t *testing.T, value, minVal, maxVal float64) {
		got := NormalizeInverse(value, minVal, maxVal)
		if minVal == maxVal && got != NeutralScore {
			t.Fatalf("degenerate range returned %v", got)
		}
	})
}
