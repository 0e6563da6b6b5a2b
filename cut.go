package clustergram

import "fmt"

// Cut splits the dendrogram into k flat clusters by undoing its last k-1
// merges. It returns one cluster ID per input vector, in input order; IDs run
// from 0 to k-1 and are numbered by first appearance.
func (r *Result) Cut(k int) ([]int, error) {
	n := len(r.Leaves)
	if k < 1 || k > n {
		return nil, fmt.Errorf("clustergram: cut into %d clusters of %d points: %w", k, n, ErrInvalidClusterCount)
	}

	uf := newUnionFind(n)
	for _, row := range r.LinkageMatrix[:n-k] {
		uf.merge(int(row[0]), int(row[1]))
	}

	ids := make(map[int]int, k)
	out := make([]int, n)
	for i := range out {
		root := uf.find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		out[i] = id
	}
	return out, nil
}

// CutHeight splits the dendrogram at a linkage distance: merges at or below
// height are kept, the rest are undone. It returns the flat assignment and
// the number of clusters produced.
func (r *Result) CutHeight(height float64) ([]int, int, error) {
	n := len(r.Leaves)
	kept := 0
	for _, row := range r.LinkageMatrix {
		// Merge heights are non-decreasing for all supported linkages.
		if row[2] > height {
			break
		}
		kept++
	}
	labels, err := r.Cut(n - kept)
	if err != nil {
		return nil, 0, err
	}
	return labels, n - kept, nil
}
