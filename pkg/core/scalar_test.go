package core

import (
	"math"
	"testing"
)

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name     string
		edge0    float64
		edge1    float64
		x        float64
		expected float64
	}{
		{"below edge0", 0, 1, -0.5, 0},
		{"at edge0", 0, 1, 0, 0},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"at edge1", 0, 1, 1, 1},
		{"above edge1", 0, 1, 2, 1},
		{"quarter", 0, 1, 0.25, 0.25 * 0.25 * (3 - 2*0.25)},
		{"shifted edges", 2, 4, 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smoothstep(tt.edge0, tt.edge1, tt.x)
			if math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestSmoothstep_Monotonic(t *testing.T) {
	prev := Smoothstep(0, 1, 0)
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		cur := Smoothstep(0, 1, x)
		if cur < prev {
			t.Fatalf("Smoothstep decreased at x=%f: %f < %f", x, cur, prev)
		}
		prev = cur
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Expected 0.3, got %f", got)
	}
}
