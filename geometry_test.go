package octree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctantsTileParent(t *testing.T) {
	parent := NewBox(V3[float64](-2, 0, 10), V3[float64](2, 8, 12))
	total := 0.0
	for i := 0; i < 8; i++ {
		c := parent.octant(i)
		s := c.Size()
		total += s.X * s.Y * s.Z
		require.True(t, parent.Contains(c.Min))
		require.True(t, parent.Contains(c.Max))
		require.True(t, c.Contains(parent.Center()))
		for j := 0; j < i; j++ {
			o := parent.octant(j)
			require.False(t, c.overlaps(o.Min, o.Max), "octants %v and %v overlap", i, j)
		}
	}
	s := parent.Size()
	require.InDelta(t, s.X*s.Y*s.Z, total, 1e-9)
	require.Equal(t, V3[float64](2, 8, 12), parent.octant(7).Max)
	require.Equal(t, V3[float64](-2, 0, 10), parent.octant(0).Min)
}

func TestBoxTests(t *testing.T) {
	a := NewBox(V3[float32](0, 0, 0), V3[float32](1, 1, 1))
	// shared face
	require.True(t, a.IntersectsBox(V3[float32](1, 0, 0), V3[float32](2, 1, 1)))
	require.False(t, a.overlaps(V3[float32](1, 0, 0), V3[float32](2, 1, 1)))
	require.True(t, a.overlaps(V3[float32](0.5, 0.5, 0.5), V3[float32](2, 2, 2)))
	require.False(t, a.IntersectsBox(V3[float32](1.1, 0, 0), V3[float32](2, 1, 1)))

	require.True(t, a.smallerThan(1.5))
	require.False(t, a.smallerThan(1))
}

func TestRayHits(t *testing.T) {
	b := NewBox(V3[float64](0, 0, 0), V3[float64](1, 1, 1))
	for _, tc := range []struct {
		name string
		ray  Ray[float64]
		hit  bool
	}{
		{"inside", Ray[float64]{V3(0.5, 0.5, 0.5), V3[float64](1, 2, 3)}, true},
		{"in front", Ray[float64]{V3[float64](-1, 0.5, 0.5), V3[float64](1, 0, 0)}, true},
		{"behind", Ray[float64]{V3[float64](2, 0.5, 0.5), V3[float64](1, 0, 0)}, false},
		{"miss", Ray[float64]{V3[float64](-1, 2, 0.5), V3[float64](1, 0.1, 0)}, false},
		{"diagonal", Ray[float64]{V3[float64](-1, -1, -1), V3[float64](1, 1, 1)}, true},
		{"parallel outside slab", Ray[float64]{V3[float64](-1, 1.5, 0.5), V3[float64](1, 0, 0)}, false},
		{"parallel on face", Ray[float64]{V3[float64](-1, 1, 0.5), V3[float64](1, 0, 0)}, true},
		{"zero direction inside", Ray[float64]{V3(0.5, 0.5, 0.5), V3[float64](0, 0, 0)}, true},
		{"zero direction outside", Ray[float64]{V3(1.5, 0.5, 0.5), V3[float64](0, 0, 0)}, false},
		{"exits immediately", Ray[float64]{V3(0.9999, 0.5, 0.5), V3[float64](1, 0, 0)}, false},
		{"starts on near face", Ray[float64]{V3(0, 0.5, 0.5), V3[float64](1, 0, 0)}, true},
	} {
		require.Equal(t, tc.hit, tc.ray.hits(b), tc.name)
	}
}

func TestPlaneReaches(t *testing.T) {
	b := NewBox(V3[float64](0, 0, 0), V3[float64](1, 1, 1))
	require.True(t, Plane[float64]{V3[float64](1, 0, 0), 0.5}.reaches(b))
	require.True(t, Plane[float64]{V3[float64](1, 0, 0), -5}.reaches(b))
	require.False(t, Plane[float64]{V3[float64](1, 0, 0), 1}.reaches(b))
	require.False(t, Plane[float64]{V3[float64](-1, 0, 0), 0}.reaches(b))
	require.True(t, Plane[float64]{V3[float64](-1, 0, 0), -0.5}.reaches(b))
	require.False(t, Plane[float64]{V3[float64](0, 0, -1), 0}.reaches(b))
	require.Equal(t, 2.0, Plane[float64]{V3[float64](0, 0, 1), 1}.SignedDistance(V3[float64](5, 5, 3)))
}
