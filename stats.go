package octree

// Stats describes the shape of an Octree
type Stats struct {
	Nodes        int // Including the root
	Leaves       int
	MaxDepth     int // The root is at depth 0
	MaxLeafItems int // Largest bucket held by a single leaf
	StoredItems  int // Sum of bucket sizes. Exceeds Len when items straddle leaves
}

// Stats walks the whole tree
func (o *Octree[F, T]) Stats() Stats {
	s := Stats{}
	if len(o.nodes) == 0 {
		return s
	}

	// pairs of (node, depth)
	queue := make([]int, 0, 32)
	queue = append(queue, 0, 0)

	for len(queue) != 0 {
		n := &o.nodes[queue[len(queue)-2]]
		depth := queue[len(queue)-1]
		queue = queue[:len(queue)-2]

		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, depth)
		if n.isLeaf() {
			s.Leaves++
			s.StoredItems += len(n.items)
			s.MaxLeafItems = max(s.MaxLeafItems, len(n.items))
			continue
		}
		for c := n.first; c < n.first+8; c++ {
			queue = append(queue, c, depth+1)
		}
	}
	return s
}
