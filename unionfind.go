package clustergram

// unionFind tracks which leaves have been merged while a linkage matrix is
// replayed. It holds 2n-1 elements so that merge IDs (n, n+1, ...) can be
// set roots, matching the ID scheme of ClusterNode.
type unionFind struct {
	parent []int
	size   []int
	// next is the ID the next merge will receive, starting at n.
	next int
}

func newUnionFind(n int) *unionFind {
	total := max(2*n-1, 1)
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // root
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size, next: n}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// merge joins the sets containing a and b under a fresh root carrying the
// next merge ID, and returns that ID.
func (uf *unionFind) merge(a, b int) int {
	ra, rb := uf.find(a), uf.find(b)
	id := uf.next
	uf.size[id] = uf.size[ra] + uf.size[rb]
	uf.parent[ra] = id
	uf.parent[rb] = id
	uf.next++
	return id
}
