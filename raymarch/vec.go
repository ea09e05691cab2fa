package raymarch

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec3) float64 {
	return Len(a.Sub(b))
}

// Normalize returns v scaled to unit length.
//
// v must have non-zero length. A zero vector is returned unchanged so the
// result is never NaN; use NormalizeChecked when the caller must know.
func Normalize(v Vec3) Vec3 {
	n, _ := NormalizeChecked(v)
	return n
}

// NormalizeChecked is Normalize that reports whether v had a usable length.
func NormalizeChecked(v Vec3) (Vec3, bool) {
	l := Len(v)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, true
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
