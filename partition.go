package clustergram

import (
	"fmt"
	"math"
)

// LayoutOptions controls the sunburst partition.
type LayoutOptions struct {
	// AngleSpan is the total angle shared by the root, in radians.
	AngleSpan float64

	// Radius is the outer radius of the deepest ring.
	Radius float64

	// MinAngle hides arcs whose span is at or below it from Visible.
	// 0.005 rad is about 0.29 degrees.
	MinAngle float64
}

// DefaultLayoutOptions returns a full circle of radius 300 hiding arcs
// narrower than 0.005 radians.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		AngleSpan: 2 * math.Pi,
		Radius:    300,
		MinAngle:  0.005,
	}
}

// PartitionedNode is a hierarchy node with its arc. Parent and Children are
// indices into the owning Partition; the root's Parent is -1.
type PartitionedNode struct {
	Index int
	Node  *HierarchyNode
	Name  string
	Depth int

	// Value is the subtree weight (sum of leaf sizes).
	Value float64

	AngleStart  float64
	AngleSpan   float64
	RadiusInner float64
	RadiusOuter float64

	Parent   int
	Children []int
}

// AngleEnd returns AngleStart + AngleSpan.
func (p *PartitionedNode) AngleEnd() float64 { return p.AngleStart + p.AngleSpan }

// Partition is the laid-out tree. Nodes are stored in pre-order, so the root
// is Nodes[0] and every parent precedes its children. It is read-only once
// returned by Layout.
type Partition struct {
	Nodes []PartitionedNode

	AngleSpan float64
	Radius    float64
	MinAngle  float64

	levels int
}

// Layout partitions h over [0, angleSpan) and radial extent [0, radius],
// using the default visibility threshold.
func Layout(h *HierarchyNode, angleSpan, radius float64) (*Partition, error) {
	opts := DefaultLayoutOptions()
	opts.AngleSpan = angleSpan
	opts.Radius = radius
	return LayoutWith(h, opts)
}

// LayoutWith partitions h with explicit options.
//
// Each node's span is divided among its children in child order,
// proportionally to their weights; the last child closes the parent's span so
// children tile it exactly. Rings are spaced so every depth covers the same
// area: a node at depth d spans radii R*sqrt(d/L) to R*sqrt((d+1)/L), where L
// is the number of depth levels.
func LayoutWith(h *HierarchyNode, opts LayoutOptions) (*Partition, error) {
	if h == nil {
		return nil, ErrEmptyHierarchy
	}
	if !(opts.AngleSpan > 0) || !(opts.Radius > 0) || opts.MinAngle < 0 {
		return nil, fmt.Errorf("clustergram: span %g, radius %g, min angle %g: %w",
			opts.AngleSpan, opts.Radius, opts.MinAngle, ErrInvalidLayout)
	}

	p := &Partition{
		AngleSpan: opts.AngleSpan,
		Radius:    opts.Radius,
		MinAngle:  opts.MinAngle,
	}
	maxDepth := 0
	p.add(h, -1, 0, &maxDepth)
	p.levels = maxDepth + 1

	root := &p.Nodes[0]
	root.AngleStart = 0
	root.AngleSpan = opts.AngleSpan

	// Pre-order guarantees a parent's arc is final before its children's.
	for i := range p.Nodes {
		node := &p.Nodes[i]
		node.RadiusInner = p.ringRadius(node.Depth)
		node.RadiusOuter = p.ringRadius(node.Depth + 1)

		start := node.AngleStart
		end := node.AngleEnd()
		for k, ci := range node.Children {
			child := &p.Nodes[ci]
			child.AngleStart = start
			switch {
			case k == len(node.Children)-1:
				child.AngleSpan = end - start
			case node.Value > 0:
				child.AngleSpan = node.AngleSpan * child.Value / node.Value
			default:
				child.AngleSpan = 0
			}
			start += child.AngleSpan
		}
	}
	return p, nil
}

// add appends h and its subtree in pre-order and returns h's index.
func (p *Partition) add(h *HierarchyNode, parent, depth int, maxDepth *int) int {
	idx := len(p.Nodes)
	p.Nodes = append(p.Nodes, PartitionedNode{
		Index:  idx,
		Node:   h,
		Name:   h.Name,
		Depth:  depth,
		Parent: parent,
	})
	*maxDepth = max(*maxDepth, depth)

	if h.IsLeaf() {
		p.Nodes[idx].Value = h.Size
		return idx
	}
	children := make([]int, 0, len(h.Children))
	var value float64
	for _, c := range h.Children {
		ci := p.add(c, idx, depth+1, maxDepth)
		children = append(children, ci)
		value += p.Nodes[ci].Value
	}
	p.Nodes[idx].Children = children
	p.Nodes[idx].Value = value
	return idx
}

// ringRadius maps a depth boundary to a radius so rings have equal area.
func (p *Partition) ringRadius(depth int) float64 {
	return p.Radius * math.Sqrt(float64(depth)/float64(p.levels))
}

// Len returns the number of nodes, hidden ones included.
func (p *Partition) Len() int { return len(p.Nodes) }

// Root returns the root node.
func (p *Partition) Root() *PartitionedNode { return &p.Nodes[0] }

// Node returns the node at index i.
func (p *Partition) Node(i int) *PartitionedNode { return &p.Nodes[i] }

// Total returns the root's weight.
func (p *Partition) Total() float64 { return p.Nodes[0].Value }

// Parent returns n's parent, or nil for the root.
func (p *Partition) Parent(n *PartitionedNode) *PartitionedNode {
	if n.Parent < 0 {
		return nil
	}
	return &p.Nodes[n.Parent]
}

// Visible returns the nodes wide enough to draw, in pre-order.
func (p *Partition) Visible() []*PartitionedNode {
	out := make([]*PartitionedNode, 0, len(p.Nodes))
	for i := range p.Nodes {
		if p.Nodes[i].AngleSpan > p.MinAngle {
			out = append(out, &p.Nodes[i])
		}
	}
	return out
}

// AncestorsOf returns n's ancestors from its immediate parent upwards,
// excluding the root.
func (p *Partition) AncestorsOf(n *PartitionedNode) []*PartitionedNode {
	var out []*PartitionedNode
	for cur := p.Parent(n); cur != nil && cur.Parent >= 0; cur = p.Parent(cur) {
		out = append(out, cur)
	}
	return out
}

// Find returns the node laid out for cluster c, or nil.
func (p *Partition) Find(c *ClusterNode) *PartitionedNode {
	for i := range p.Nodes {
		if p.Nodes[i].Node.Cluster == c {
			return &p.Nodes[i]
		}
	}
	return nil
}
