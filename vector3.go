package govec3

import "math"

// Vector3 is a 3D vector or point in double precision. It is a plain value:
// copy it freely, no operation mutates its receiver.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func NewVector3FromArray(a []float64) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference of v and o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mult returns v scaled by s (vector times scalar). Scale is the same
// operation spelled scalar-first.
func (v Vector3) Mult(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Scale returns v scaled by s (scalar times vector).
func Scale(s float64, v Vector3) Vector3 {
	return v.Mult(s)
}

// Neg returns the vector pointing the opposite way.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot computes the dot product of two vectors.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross computes the cross product of two vectors under the right-hand rule.
// Parallel inputs (the zero vector included) give the zero vector.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean magnitude of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq returns the squared magnitude, skipping the sqrt. Useful when only
// comparing lengths.
func (v Vector3) LengthSq() float64 {
	return v.Dot(v)
}

// Normalized returns the unit vector pointing the same way as v.
//
// It panics when Length() is exactly zero: a zero-length vector has no
// direction, and asking for one is a caller bug, not a condition to paper
// over with a garbage vector. The guard is an exact comparison, so vectors
// with tiny but nonzero length still normalize (to correspondingly huge
// components).
func (v Vector3) Normalized() Vector3 {
	length := v.Length()
	if length == 0 {
		panic("govec3: cannot normalize zero-length vector")
	}
	return v.Mult(1 / length)
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Length()
}
