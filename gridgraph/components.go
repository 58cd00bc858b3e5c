package gridgraph

// Components finds the clusters of sites joined by open bonds. Every bond
// produced by Bonds is offered to open exactly once, in sweep order; bonds for
// which open returns true connect their endpoints.
//
// Returns a slice of clusters; each cluster is a slice of site indices in BFS
// order, and clusters are ordered by their smallest site index. Every site
// appears in exactly one cluster, so isolated sites form clusters of size 1.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(L²).
// Memory: O(L²) for adjacency, visited flags and output.
func (l *Lattice) Components(open func(u, v int) bool) [][]int {
	total := l.Sites()
	adj := make([][]int, total)
	l.Bonds(func(u, v int) {
		if !open(u, v) {
			return
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	})

	seen := make([]bool, total)
	var comps [][]int
	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
