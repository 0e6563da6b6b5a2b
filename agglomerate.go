package clustergram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// InternalLabel marks merge nodes, which have no class label of their own.
const InternalLabel = "internal"

// ClusterNode is a node of the binary merge tree. A leaf wraps one input
// vector; a merge owns exactly two children.
type ClusterNode struct {
	// ID follows the scipy linkage scheme: leaves are 0..n-1 in input order,
	// merges are n, n+1, ... in the order they were formed.
	ID int

	// Label is the leaf's class label, or InternalLabel for merges.
	Label string

	// Row is the dataset row of a leaf, -1 for merges.
	Row int

	// Centroid is the component-wise mean of all leaves under this node.
	Centroid []float64

	Left, Right *ClusterNode

	// Count is the number of leaves in the subtree.
	Count int

	// Height is the linkage distance at which the merge happened (0 for leaves).
	Height float64
}

// IsLeaf reports whether the node has no children.
func (c *ClusterNode) IsLeaf() bool {
	return c.Left == nil && c.Right == nil
}

// Leaves returns the leaves of the subtree, left to right.
func (c *ClusterNode) Leaves() []*ClusterNode {
	if c == nil {
		return nil
	}
	out := make([]*ClusterNode, 0, c.Count)
	stack := []*ClusterNode{c}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.IsLeaf() {
			out = append(out, node)
			continue
		}
		// Push right first so left is visited first.
		stack = append(stack, node.Right, node.Left)
	}
	return out
}

// Walk calls fn for every node of the subtree in pre-order (node, left, right).
func (c *ClusterNode) Walk(fn func(*ClusterNode)) {
	if c == nil {
		return
	}
	fn(c)
	c.Left.Walk(fn)
	c.Right.Walk(fn)
}

// Config controls agglomerative clustering.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric measures leaf-to-leaf distance. Default: EuclideanMetric.
	Metric DistanceMetric

	// Linkage derives cluster-to-cluster distance from leaf distances.
	// Default: SingleLinkage.
	Linkage Linkage
}

// DefaultConfig returns Euclidean distance with single linkage.
func DefaultConfig() Config {
	return Config{
		Metric:  EuclideanMetric{},
		Linkage: SingleLinkage,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Linkage == "" {
		cfg.Linkage = SingleLinkage
	}
}

func validateConfig(cfg *Config) error {
	if !cfg.Linkage.valid() {
		return fmt.Errorf("clustergram: linkage %q: %w", cfg.Linkage, ErrInvalidLinkage)
	}
	return nil
}

// Result is the output of agglomerative clustering.
type Result struct {
	// Root is the top of the merge tree; Root.Count equals the input size.
	Root *ClusterNode

	// Leaves holds the leaf nodes indexed by input position.
	Leaves []*ClusterNode

	// LinkageMatrix is the dendrogram in scipy format: one row per merge,
	// [left, right, distance, size], in merge order.
	LinkageMatrix [][4]float64

	Metric  string
	Linkage Linkage
}

// Engine clusters vectors with a metric and linkage chosen at construction.
type Engine struct {
	cfg Config
}

// NewEngine resolves metric and linkage tags and returns an engine for them.
func NewEngine(metric, linkage string) (*Engine, error) {
	m, err := MetricByName(metric)
	if err != nil {
		return nil, err
	}
	l, err := ParseLinkage(linkage)
	if err != nil {
		return nil, err
	}
	return NewEngineWithConfig(Config{Metric: m, Linkage: l})
}

// NewEngineWithConfig returns an engine for cfg, filling zero fields with defaults.
func NewEngineWithConfig(cfg Config) (*Engine, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's resolved configuration.
func (e *Engine) Config() Config { return e.cfg }

// Cluster builds the merge tree for vectors.
func (e *Engine) Cluster(vectors []FeatureVector) (*Result, error) {
	return agglomerate(vectors, e.cfg)
}

// BuildClustering clusters vectors bottom-up until one cluster remains.
// A nil metric means Euclidean; an empty linkage means single.
func BuildClustering(vectors []FeatureVector, metric DistanceMetric, linkage Linkage) (*Result, error) {
	e, err := NewEngineWithConfig(Config{Metric: metric, Linkage: linkage})
	if err != nil {
		return nil, err
	}
	return e.Cluster(vectors)
}

// agglomerate runs the merge loop. The leaf-pair distance matrix is computed
// once; afterwards each slot of the matrix holds the distance between the
// clusters currently occupying those slots. A merged cluster takes over the
// slot of its earlier-formed child and its row is refreshed with the linkage
// update, so no leaf pair is ever revisited.
func agglomerate(vectors []FeatureVector, cfg Config) (*Result, error) {
	n := len(vectors)
	switch n {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return nil, fmt.Errorf("clustergram: a single vector cannot be merged: %w", ErrInsufficientData)
	}

	dist, err := PairwiseDistances(vectors, cfg.Metric)
	if err != nil {
		return nil, err
	}

	leaves := make([]*ClusterNode, n)
	slots := make([]*ClusterNode, n)
	// active lists occupied slots in formation order; scanning it in order
	// makes the earliest-formed pair win distance ties.
	active := make([]int, n)
	for i, v := range vectors {
		leaves[i] = &ClusterNode{
			ID:       i,
			Label:    v.Label,
			Row:      v.Row,
			Centroid: append([]float64(nil), v.Components...),
			Count:    1,
		}
		slots[i] = leaves[i]
		active[i] = i
	}

	matrix := make([][4]float64, 0, n-1)
	nextID := n

	for len(active) > 1 {
		bestP, bestQ := -1, -1
		var best float64
		for p := 0; p < len(active); p++ {
			for q := p + 1; q < len(active); q++ {
				d := dist.At(active[p], active[q])
				if bestP == -1 || d < best {
					bestP, bestQ, best = p, q, d
				}
			}
		}

		sa, sb := active[bestP], active[bestQ]
		a, b := slots[sa], slots[sb]
		node := mergeNodes(a, b, best, nextID)

		for _, sc := range active {
			if sc == sa || sc == sb {
				continue
			}
			d := cfg.Linkage.update(dist.At(sa, sc), dist.At(sb, sc), a.Count, b.Count)
			dist.SetSym(sa, sc, d)
		}

		slots[sa] = node
		slots[sb] = nil
		// bestQ > bestP, so removing it first leaves bestP in place.
		active = append(active[:bestQ], active[bestQ+1:]...)
		active = append(active[:bestP], active[bestP+1:]...)
		active = append(active, sa)

		matrix = append(matrix, [4]float64{float64(a.ID), float64(b.ID), best, float64(node.Count)})
		nextID++
	}

	return &Result{
		Root:          slots[active[0]],
		Leaves:        leaves,
		LinkageMatrix: matrix,
		Metric:        metricName(cfg.Metric),
		Linkage:       cfg.Linkage,
	}, nil
}

// mergeNodes creates the parent of a and b. Its centroid is the
// count-weighted mean of the children's centroids.
func mergeNodes(a, b *ClusterNode, height float64, id int) *ClusterNode {
	total := a.Count + b.Count
	centroid := make([]float64, len(a.Centroid))
	floats.AddScaled(centroid, float64(a.Count)/float64(total), a.Centroid)
	floats.AddScaled(centroid, float64(b.Count)/float64(total), b.Centroid)
	return &ClusterNode{
		ID:       id,
		Label:    InternalLabel,
		Row:      -1,
		Centroid: centroid,
		Left:     a,
		Right:    b,
		Count:    total,
		Height:   height,
	}
}
