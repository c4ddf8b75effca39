package octree

// Box is an axis-aligned box. Min <= Max on every axis, unless the box is inverted.
type Box[F Float] struct {
	Min Vec3[F]
	Max Vec3[F]
}

// NewBox builds a box from two arbitrary opposite corners.
func NewBox[F Float](a, b Vec3[F]) Box[F] {
	return Box[F]{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func (a Box[F]) Size() Vec3[F] {
	return a.Max.Sub(a.Min)
}

func (a Box[F]) Center() Vec3[F] {
	return a.Min.Mid(a.Max)
}

// Contains reports whether p is inside the box, boundary included.
func (a Box[F]) Contains(p Vec3[F]) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// IntersectsBox reports whether the box touches or overlaps [min, max].
// This makes *Box usable directly as an Octree item.
func (a Box[F]) IntersectsBox(min, max Vec3[F]) bool {
	return a.Min.X <= max.X && a.Max.X >= min.X &&
		a.Min.Y <= max.Y && a.Max.Y >= min.Y &&
		a.Min.Z <= max.Z && a.Max.Z >= min.Z
}

// overlaps is the node-level test used while walking the tree.
// Boxes that only share a face, edge or corner do not overlap.
func (a Box[F]) overlaps(min, max Vec3[F]) bool {
	return min.X < a.Max.X && max.X > a.Min.X &&
		min.Y < a.Max.Y && max.Y > a.Min.Y &&
		min.Z < a.Max.Z && max.Z > a.Min.Z
}

// smallerThan is true when every edge of the box is shorter than size
func (a Box[F]) smallerThan(size F) bool {
	s := a.Size()
	return s.X < size && s.Y < size && s.Z < size
}

// canShrink reports whether splitting would give at least one octant an
// edge shorter than its parent's on an axis that is still at least size long.
// Near large coordinates the midpoint can round onto Min or Max.
func (a Box[F]) canShrink(size F) bool {
	mid := a.Center()
	lo := [3]F{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]F{a.Max.X, a.Max.Y, a.Max.Z}
	m := [3]F{mid.X, mid.Y, mid.Z}
	for axis := 0; axis < 3; axis++ {
		if hi[axis]-lo[axis] >= size && m[axis] > lo[axis] && m[axis] < hi[axis] {
			return true
		}
	}
	return false
}

// octant returns child i of the box, where bit 2, 1 and 0 of i select the
// upper half on the X, Y and Z axis respectively.
func (a Box[F]) octant(i int) Box[F] {
	mid := a.Center()
	corner := a.Min
	if i&4 != 0 {
		corner.X = a.Max.X
	}
	if i&2 != 0 {
		corner.Y = a.Max.Y
	}
	if i&1 != 0 {
		corner.Z = a.Max.Z
	}
	return NewBox(mid, corner)
}
