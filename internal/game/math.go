package game

import "math"

// Vec3 is a position, direction or velocity in world space (meters).
type Vec3 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns the unit vector, or the zero vector if v is degenerate.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

func (v Vec3) DistanceTo(o Vec3) float64 { return o.Sub(v).Len() }

// Flat drops the vertical component. Used for ground movement and
// facing checks, which ignore height differences.
func (v Vec3) Flat() Vec3 { return Vec3{v.X, 0, v.Z} }

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// AngleBetween returns the unsigned angle in radians between two vectors.
// Degenerate inputs yield Pi so that zero-length directions never pass a
// cone test by accident.
func AngleBetween(a, b Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < 1e-9 || lb < 1e-9 {
		return math.Pi
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// YawToDir converts a yaw angle (radians, around Y axis) into a flat
// forward vector.
func YawToDir(yaw float64) Vec3 {
	return Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// DirToYaw is the inverse of YawToDir for flat directions.
func DirToYaw(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}
