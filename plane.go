package octree

// Plane is the set of points p where Normal.Dot(p) == Distance.
// The positive half-space is where Normal.Dot(p) > Distance.
type Plane[F Float] struct {
	Normal   Vec3[F]
	Distance F
}

// SignedDistance is positive on the side Normal points to. It is a true
// distance only when Normal has unit length.
func (p Plane[F]) SignedDistance(v Vec3[F]) F {
	return p.Normal.Dot(v) - p.Distance
}

// reaches reports whether any part of b lies strictly on the positive side of
// the plane. Only the corner furthest along the normal needs checking.
func (p Plane[F]) reaches(b Box[F]) bool {
	corner := b.Min
	if p.Normal.X > 0 {
		corner.X = b.Max.X
	}
	if p.Normal.Y > 0 {
		corner.Y = b.Max.Y
	}
	if p.Normal.Z > 0 {
		corner.Z = b.Max.Z
	}
	return p.SignedDistance(corner) > 0
}
