package octree

import "math"

// Parametric distance below which a ray is considered to start inside a box.
const rayEpsilon = 1e-3

// Ray is a half-line. Direction does not need to be normalized.
type Ray[F Float] struct {
	Origin    Vec3[F]
	Direction Vec3[F]
}

// hits runs the slab test against a box. An axis with a zero direction
// component is treated as parallel to that slab: the ray is inside the slab
// forever if the origin is, and never otherwise. A zero direction therefore
// degenerates to a point-in-box test.
func (r Ray[F]) hits(b Box[F]) bool {
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)

	o := [3]F{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]F{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]F{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]F{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return false
			}
			continue
		}
		t1 := float64(lo[axis]-o[axis]) / float64(d[axis])
		t2 := float64(hi[axis]-o[axis]) / float64(d[axis])
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}

	if tEnter < rayEpsilon {
		// origin is inside the box, or the box is behind the ray
		return tExit > rayEpsilon
	}
	return tEnter < tExit
}
