package octree

import "math"

// Float is the coordinate type of an Octree.
type Float interface {
	float32 | float64
}

// Vec3 is a point or direction in 3D space.
type Vec3[F Float] struct {
	X F
	Y F
	Z F
}

func V3[F Float](x, y, z F) Vec3[F] {
	return Vec3[F]{X: x, Y: y, Z: z}
}

func (a Vec3[F]) Add(b Vec3[F]) Vec3[F] {
	return Vec3[F]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3[F]) Sub(b Vec3[F]) Vec3[F] {
	return Vec3[F]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3[F]) Dot(b Vec3[F]) F {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3[F]) isFinite() bool {
	for _, v := range [3]F{a.X, a.Y, a.Z} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// Min returns the componentwise minimum of a and b
func (a Vec3[F]) Min(b Vec3[F]) Vec3[F] {
	return Vec3[F]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b
func (a Vec3[F]) Max(b Vec3[F]) Vec3[F] {
	return Vec3[F]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Mid returns the point halfway between a and b
func (a Vec3[F]) Mid(b Vec3[F]) Vec3[F] {
	return Vec3[F]{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}
