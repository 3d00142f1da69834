package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecsEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecsEqual(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if dot := a.Dot(b); dot != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", dot)
	}

	cross := a.Cross(b)
	if !vecsEqual(cross, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected x cross y = z, got %v", cross)
	}

	if dot := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6)); math.Abs(dot-32) > tolerance {
		t.Errorf("Expected dot product 32, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	if !vecsEqual(v, NewVec3(0.6, 0.8, 0), tolerance) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !vecsEqual(v, NewVec3(0, 0.5, 1), tolerance) {
		t.Errorf("Expected (0, 0.5, 1), got %v", v)
	}

	// +Inf clamps to the upper bound
	v = NewVec3(math.Inf(1), 0, 0).Clamp(0, 1)
	if v.X != 1 {
		t.Errorf("Expected +Inf to clamp to 1, got %f", v.X)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))
	p := ray.At(2.5)
	if !vecsEqual(p, NewVec3(1, 2, 5.5), tolerance) {
		t.Errorf("Expected (1, 2, 5.5), got %v", p)
	}
}
