package core

// InvPi is 1/π, used to normalize surface colors into albedo values
const InvPi = 1.0 / 3.14159265358979323846264338327950288

// Epsilon is the offset applied along surface normals to avoid
// self-intersection when spawning secondary rays
const Epsilon = 1e-4

// Clamp limits x to the range [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}

// Smoothstep mirrors the GLSL smoothstep: clamps (x-edge0)/(edge1-edge0)
// to [0,1] and applies the cubic Hermite curve 3t²-2t³
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
