package govec3

import "math"

// Vector2 is the 2D companion to Vector3, used for screen-space math.
type Vector2 struct {
	X float64
	Y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewVectorFromAngle returns the unit vector at the given angle in radians.
func NewVectorFromAngle(angle float64) Vector2 {
	return Vector2{
		X: math.Cos(angle),
		Y: math.Sin(angle),
	}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mult scales v by a scalar.
func (v Vector2) Mult(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Normalize returns the unit vector in the same direction, or the zero vector
// when v has no length. Screen-space code treats that as "no direction", so
// unlike Vector3.Normalized this does not panic.
func (v Vector2) Normalize() Vector2 {
	magnitude := math.Sqrt(v.X*v.X + v.Y*v.Y)

	if magnitude == 0 {
		return Vector2{X: 0, Y: 0}
	}

	return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	cosAngle := math.Cos(angle)
	sinAngle := math.Sin(angle)

	newX := v.X*cosAngle - v.Y*sinAngle
	newY := v.X*sinAngle + v.Y*cosAngle

	return Vector2{X: newX, Y: newY}
}

// Angle returns the angle of v in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetweenVectors2 returns the angle between two Vector2s in radians.
// Either input having zero length gives 0.
func AngleBetweenVectors2(a, b Vector2) float64 {
	dot := a.X*b.X + a.Y*b.Y
	magA := math.Sqrt(a.X*a.X + a.Y*a.Y)
	magB := math.Sqrt(b.X*b.X + b.Y*b.Y)

	if magA == 0 || magB == 0 {
		return 0
	}

	cosTheta := dot / (magA * magB)
	// Clamp cosTheta to [-1, 1] to avoid NaN due to floating point error
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}
