package govec3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mgl converts v to a mathgl mgl64.Vec3.
func (v Vector3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl mgl64.Vec3 back to a Vector3.
func FromMgl(m mgl64.Vec3) Vector3 {
	return Vector3{X: m.X(), Y: m.Y(), Z: m.Z()}
}

// RotateX returns v rotated about the X axis by angle radians.
func RotateX(v Vector3, angle float64) Vector3 {
	return FromMgl(mgl64.Rotate3DX(angle).Mul3x1(v.Mgl()))
}

// RotateY returns v rotated about the Y axis by angle radians.
func RotateY(v Vector3, angle float64) Vector3 {
	return FromMgl(mgl64.Rotate3DY(angle).Mul3x1(v.Mgl()))
}

// RotateZ returns v rotated about the Z axis by angle radians.
func RotateZ(v Vector3, angle float64) Vector3 {
	return FromMgl(mgl64.Rotate3DZ(angle).Mul3x1(v.Mgl()))
}

// AngleBetween returns the angle between a and b in radians. Either input
// having zero length gives 0.
func AngleBetween(a, b Vector3) float64 {
	magA := a.Length()
	magB := b.Length()

	if magA == 0 || magB == 0 {
		return 0
	}

	cosTheta := a.Dot(b) / (magA * magB)
	// Clamp to [-1, 1] to avoid NaN due to floating point error
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}
