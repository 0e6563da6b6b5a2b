package clustergram

// HierarchyNode adapts a ClusterNode for layout. Leaves carry a unit Size;
// merge nodes store none and derive their weight from their leaves.
type HierarchyNode struct {
	Name     string
	Children []*HierarchyNode
	Size     float64

	// Cluster is the merge-tree node this node was built from.
	Cluster *ClusterNode
}

// ToHierarchy converts a merge tree into a layout hierarchy. Children keep
// the [left, right] order so repeated renders of one clustering look the same.
func ToHierarchy(root *ClusterNode) *HierarchyNode {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		return &HierarchyNode{Name: root.Label, Children: []*HierarchyNode{}, Size: 1, Cluster: root}
	}
	return &HierarchyNode{
		Name:     InternalLabel,
		Children: []*HierarchyNode{ToHierarchy(root.Left), ToHierarchy(root.Right)},
		Cluster:  root,
	}
}

// IsLeaf reports whether the node has no children.
func (h *HierarchyNode) IsLeaf() bool { return len(h.Children) == 0 }

// Weight is the sum of leaf sizes under h.
func (h *HierarchyNode) Weight() float64 {
	if h.IsLeaf() {
		return h.Size
	}
	var w float64
	for _, c := range h.Children {
		w += c.Weight()
	}
	return w
}

// Leaves returns the leaf nodes under h, left to right.
func (h *HierarchyNode) Leaves() []*HierarchyNode {
	if h.IsLeaf() {
		return []*HierarchyNode{h}
	}
	var out []*HierarchyNode
	for _, c := range h.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}
