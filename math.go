package rrosave

import (
	"math"
	"strconv"
	"strings"
)

// Vector is a 3D position in engine units.
type Vector struct {
	X, Y, Z float32
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(float64(v.X), 'g', -1, 32))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(v.Y), 'g', -1, 32))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(v.Z), 'g', -1, 32))
	b.WriteByte(')')
	return b.String()
}

// Rotator is an orientation as three Euler angles in degrees, following the
// engine's (pitch, yaw, roll) convention. Its wire layout is identical to
// Vector.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

func (r Rotator) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(float64(r.Pitch), 'g', -1, 32))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(r.Yaw), 'g', -1, 32))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(r.Roll), 'g', -1, 32))
	b.WriteByte(')')
	return b.String()
}

// Quat is a rotation quaternion in the engine's convention. Saves store
// orientations as rotators; Quat exists for callers that work with the
// engine's quaternion form.
type Quat struct {
	X, Y, Z, W float32
}

const degToRad = math.Pi / 180

// Quat converts the rotator to a quaternion using the engine's axis
// conventions.
func (r Rotator) Quat() Quat {
	sp, cp := math.Sincos(float64(r.Pitch) * degToRad / 2)
	sy, cy := math.Sincos(float64(r.Yaw) * degToRad / 2)
	sr, cr := math.Sincos(float64(r.Roll) * degToRad / 2)

	return Quat{
		X: float32(cr*sp*sy - sr*cp*cy),
		Y: float32(-cr*sp*cy - sr*cp*sy),
		Z: float32(cr*cp*sy - sr*sp*cy),
		W: float32(cr*cp*cy + sr*sp*sy),
	}
}

// Rotator converts the quaternion back to Euler angles. The conversion
// matches the engine's, including the clamped behavior near the gimbal-lock
// singularities at pitch ±90.
func (q Quat) Rotator() Rotator {
	x := float64(q.X)
	y := float64(q.Y)
	z := float64(q.Z)
	w := float64(q.W)

	const singularityThreshold = 0.4999995
	const radToDeg = 180 / math.Pi

	singularity := z*x - w*y
	yawY := 2 * (w*z + x*y)
	yawX := 1 - 2*(y*y+z*z)
	yaw := math.Atan2(yawY, yawX) * radToDeg

	var pitch, roll float64
	switch {
	case singularity < -singularityThreshold:
		pitch = -90
		roll = normalizeAxis(-yaw - 2*math.Atan2(x, w)*radToDeg)
	case singularity > singularityThreshold:
		pitch = 90
		roll = normalizeAxis(yaw - 2*math.Atan2(x, w)*radToDeg)
	default:
		pitch = math.Asin(2*singularity) * radToDeg
		roll = math.Atan2(-2*(w*x+y*z), 1-2*(x*x+y*y)) * radToDeg
	}

	return Rotator{
		Pitch: float32(pitch),
		Yaw:   float32(yaw),
		Roll:  float32(roll),
	}
}

// normalizeAxis maps an angle in degrees into (-180, 180].
func normalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
