package clustergram

import (
	"slices"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// State is the cross-filter state: which view, if any, owns the highlight.
type State int

const (
	// Idle means nothing is highlighted.
	Idle State = iota
	// NodeActive means a dendrogram arc is hovered or selected.
	NodeActive
	// BrushActive means a scatterplot brush is non-empty.
	BrushActive
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case NodeActive:
		return "node"
	case BrushActive:
		return "brush"
	default:
		return "unknown"
	}
}

// Selection is a snapshot of the shared highlight. Rows holds sorted, unique
// row IDs. Node is set in NodeActive; Cell and Brush in BrushActive.
type Selection struct {
	View  uuid.UUID
	State State
	Rows  []int

	Node  *PartitionedNode
	Cell  *Cell
	Brush r2.Box
}

// Contains reports whether row is highlighted.
func (s Selection) Contains(row int) bool {
	_, ok := slices.BinarySearch(s.Rows, row)
	return ok
}

// Empty reports whether no rows are highlighted.
func (s Selection) Empty() bool { return len(s.Rows) == 0 }

// clone copies the slices and pointers so listeners cannot reach the
// controller's copy.
func (s Selection) clone() Selection {
	out := s
	out.Rows = slices.Clone(s.Rows)
	if s.Cell != nil {
		cell := *s.Cell
		out.Cell = &cell
	}
	return out
}

// same reports whether two selections would look the same to a renderer:
// same state, same source and same rows. Brush rectangles that move without
// changing the highlighted rows are not a change.
func (s Selection) same(o Selection) bool {
	if s.State != o.State || s.Node != o.Node {
		return false
	}
	if (s.Cell == nil) != (o.Cell == nil) || (s.Cell != nil && *s.Cell != *o.Cell) {
		return false
	}
	return slices.Equal(s.Rows, o.Rows)
}

// normalizeRows sorts ids and drops duplicates.
func normalizeRows(ids []int) []int {
	slices.Sort(ids)
	return slices.Compact(ids)
}
