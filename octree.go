// Package octree is a 3D spatial index for box, ray and half-space queries.
package octree

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMaxItemsPerLeaf = 1
	DefaultMinRegionSize   = 0.1
)

// ErrInvalidConfig is returned by NewWithLimits for a bucket capacity below 1
// or a minimum region size that is not positive.
var ErrInvalidConfig = errors.New("octree: invalid configuration")

// Item is anything that can be stored in an Octree.
// IntersectsBox must report whether the item's bounding volume touches the
// box [min, max]. It must not have side effects.
// Items are compared with == to remove duplicates from query results, so
// pointer types are the natural choice.
type Item[F Float] interface {
	comparable
	IntersectsBox(min, max Vec3[F]) bool
}

// Octree is a spatial index for 3D box, ray and half-space queries.
// An item whose bounds straddle a split plane is stored in every leaf it
// touches, and reported once per query.
//
// The zero value is a placeholder index over a zero-size region at the origin.
// Octree is not safe for concurrent use.
type Octree[F Float, T Item[F]] struct {
	bounds   Box[F]
	maxItems int
	minSize  F
	nodes    []node[F, T] // nodes[0] is the root
	members  []T
}

type node[F Float, T Item[F]] struct {
	bounds Box[F]
	items  []T
	first  int // index of the first of 8 consecutive children, or -1 for a leaf
}

func (n *node[F, T]) isLeaf() bool {
	return n.first < 0
}

// New creates an Octree over the box spanned by the two corners, using the
// default leaf capacity and minimum region size.
func New[F Float, T Item[F]](cornerA, cornerB Vec3[F]) *Octree[F, T] {
	o, _ := NewWithLimits[F, T](cornerA, cornerB, DefaultMaxItemsPerLeaf, DefaultMinRegionSize)
	return o
}

// NewWithLimits creates an Octree over the box spanned by the two corners.
// A leaf holding more than maxItemsPerLeaf items is split into 8 children,
// unless every edge of the leaf is already shorter than minRegionSize, or
// float precision would leave every octant as large as the leaf.
func NewWithLimits[F Float, T Item[F]](cornerA, cornerB Vec3[F], maxItemsPerLeaf int, minRegionSize F) (*Octree[F, T], error) {
	if maxItemsPerLeaf < 1 {
		return nil, fmt.Errorf("%w: max items per leaf must be at least 1, got %v", ErrInvalidConfig, maxItemsPerLeaf)
	}
	if !(minRegionSize > 0) || math.IsInf(float64(minRegionSize), 1) {
		return nil, fmt.Errorf("%w: min region size must be positive and finite, got %v", ErrInvalidConfig, minRegionSize)
	}
	if !cornerA.isFinite() || !cornerB.isFinite() {
		return nil, fmt.Errorf("%w: corners must be finite, got %v and %v", ErrInvalidConfig, cornerA, cornerB)
	}
	o := &Octree[F, T]{
		bounds:   NewBox(cornerA, cornerB),
		maxItems: maxItemsPerLeaf,
		minSize:  minRegionSize,
	}
	o.reset()
	return o, nil
}

func (o *Octree[F, T]) reset() {
	if o.maxItems == 0 {
		o.maxItems = DefaultMaxItemsPerLeaf
		o.minSize = DefaultMinRegionSize
	}
	o.nodes = append(o.nodes[:0], node[F, T]{bounds: o.bounds, first: -1})
}

// Bounds returns the region covered by the root node
func (o *Octree[F, T]) Bounds() Box[F] {
	return o.bounds
}

func (o *Octree[F, T]) MaxItemsPerLeaf() int {
	if o.maxItems == 0 {
		return DefaultMaxItemsPerLeaf
	}
	return o.maxItems
}

func (o *Octree[F, T]) MinRegionSize() F {
	if o.maxItems == 0 {
		return DefaultMinRegionSize
	}
	return o.minSize
}

// Len returns the number of Add calls since creation or the last Clear
func (o *Octree[F, T]) Len() int {
	return len(o.members)
}

// Add inserts an item. Items are never rejected: an item outside Bounds is
// kept in Members, but once the root has split it lives in no leaf.
// Adding the same item twice records it twice.
func (o *Octree[F, T]) Add(item T) {
	if len(o.nodes) == 0 {
		o.reset()
	}
	o.members = append(o.members, item)
	o.insert(0, item)
}

// Members returns every added item, in the order it was added.
// The returned slice must not be modified.
func (o *Octree[F, T]) Members() []T {
	return o.members[:len(o.members):len(o.members)]
}

// Clear removes all items and nodes, keeping the region and limits
func (o *Octree[F, T]) Clear() {
	clear(o.nodes)
	o.nodes = o.nodes[:0]
	o.members = nil
	o.reset()
}

func (o *Octree[F, T]) insert(n int, item T) {
	if !o.nodes[n].isLeaf() {
		first := o.nodes[n].first
		for c := first; c < first+8; c++ {
			b := o.nodes[c].bounds
			if item.IntersectsBox(b.Min, b.Max) {
				o.insert(c, item)
			}
		}
		return
	}
	o.nodes[n].items = append(o.nodes[n].items, item)
	if len(o.nodes[n].items) > o.maxItems {
		o.split(n)
	}
}

// split turns leaf n into an internal node with 8 children, and pushes its
// items down into whichever children they touch.
func (o *Octree[F, T]) split(n int) {
	parent := o.nodes[n].bounds
	if parent.smallerThan(o.minSize) || !parent.canShrink(o.minSize) {
		return
	}
	first := len(o.nodes)
	for i := 0; i < 8; i++ {
		o.nodes = append(o.nodes, node[F, T]{bounds: parent.octant(i), first: -1})
	}
	items := o.nodes[n].items
	o.nodes[n].items = nil
	o.nodes[n].first = first
	for _, item := range items {
		o.insert(n, item)
	}
}

// resultSet collects query results in the order they are first seen
type resultSet[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

func newResultSet[T comparable](items []T) *resultSet[T] {
	return &resultSet[T]{
		seen:  map[T]struct{}{},
		items: items[:0],
	}
}

func (r *resultSet[T]) add(item T) {
	if _, ok := r.seen[item]; ok {
		return
	}
	r.seen[item] = struct{}{}
	r.items = append(r.items, item)
}

// QueryBox returns the items that touch the box spanned by the two corners,
// found in leaves that overlap it. A leaf that only shares a face, edge or
// corner with the query box is not visited.
// The order of the results is unspecified.
func (o *Octree[F, T]) QueryBox(cornerA, cornerB Vec3[F]) []T {
	return o.QueryBoxFast(cornerA, cornerB, []T{})
}

// QueryBoxFast accepts a 'results' as input. If you are performing millions of queries,
// then reusing a 'results' slice will reduce the number of allocations.
func (o *Octree[F, T]) QueryBoxFast(cornerA, cornerB Vec3[F], results []T) []T {
	q := NewBox(cornerA, cornerB)
	rs := newResultSet(results)
	o.walk(func(b Box[F]) bool {
		return b.overlaps(q.Min, q.Max)
	}, func(item T) {
		if item.IntersectsBox(q.Min, q.Max) {
			rs.add(item)
		}
	})
	return rs.items
}

// QueryRay returns the items held by every leaf the ray passes through.
// Items are not tested against the ray individually.
// The order of the results is unspecified.
func (o *Octree[F, T]) QueryRay(origin, direction Vec3[F]) []T {
	r := Ray[F]{Origin: origin, Direction: direction}
	rs := newResultSet([]T{})
	o.walk(r.hits, rs.add)
	return rs.items
}

// QueryPlane returns the items held by every leaf that lies at least partly
// on the positive side of the plane Normal·p = distance. Leaves that only
// touch the plane from the negative side are not visited.
// The order of the results is unspecified.
func (o *Octree[F, T]) QueryPlane(normal Vec3[F], distance F) []T {
	p := Plane[F]{Normal: normal, Distance: distance}
	rs := newResultSet([]T{})
	o.walk(p.reaches, rs.add)
	return rs.items
}

// walk visits every leaf whose bounds, and whose ancestors' bounds, pass
// the test, and emits its items.
func (o *Octree[F, T]) walk(test func(Box[F]) bool, emit func(T)) {
	if len(o.nodes) == 0 || !test(o.nodes[0].bounds) {
		return
	}

	stack := make([]int, 0, 32)
	stack = append(stack, 0)

	for len(stack) != 0 {
		n := &o.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if n.isLeaf() {
			for _, item := range n.items {
				emit(item)
			}
			continue
		}
		for c := n.first + 7; c >= n.first; c-- {
			if test(o.nodes[c].bounds) {
				stack = append(stack, c)
			}
		}
	}
}
