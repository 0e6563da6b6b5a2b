package clustergram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cell is one scatterplot of the matrix: feature X against feature Y.
// I and J are the features' positions in the dataset's feature list.
type Cell struct {
	X, Y string
	I, J int
}

// Diagonal reports whether the cell plots a feature against itself.
func (c Cell) Diagonal() bool { return c.I == c.J }

// Trellis is the scatterplot matrix over every pair of dataset features.
type Trellis struct {
	ds      *Dataset
	domains map[string]r2.Vec // X: min, Y: max
	cells   []Cell
}

// NewTrellis computes per-feature extents and the feature cross product.
func NewTrellis(ds *Dataset) (*Trellis, error) {
	if len(ds.Rows) == 0 {
		return nil, fmt.Errorf("clustergram: trellis: %w", ErrEmptyInput)
	}
	t := &Trellis{
		ds:      ds,
		domains: make(map[string]r2.Vec, len(ds.Features)),
		cells:   make([]Cell, 0, len(ds.Features)*len(ds.Features)),
	}
	for _, f := range ds.Features {
		col, err := ds.Column(f)
		if err != nil {
			return nil, err
		}
		t.domains[f] = r2.Vec{X: floats.Min(col), Y: floats.Max(col)}
	}
	for i, x := range ds.Features {
		for j, y := range ds.Features {
			t.cells = append(t.cells, Cell{X: x, Y: y, I: i, J: j})
		}
	}
	return t, nil
}

// Traits returns the plotted features in order.
func (t *Trellis) Traits() []string { return t.ds.Features }

// Cells returns every cell, row-major over (X, Y).
func (t *Trellis) Cells() []Cell { return t.cells }

// Cell looks up the cell plotting x against y.
func (t *Trellis) Cell(x, y string) (Cell, error) {
	for _, c := range t.cells {
		if c.X == x && c.Y == y {
			return c, nil
		}
	}
	return Cell{}, fmt.Errorf("clustergram: cell %q x %q: %w", x, y, ErrUnknownFeature)
}

// Domain returns the extent [min, max] of a feature.
func (t *Trellis) Domain(feature string) (lo, hi float64, err error) {
	d, ok := t.domains[feature]
	if !ok {
		return 0, 0, fmt.Errorf("clustergram: domain of %q: %w", feature, ErrUnknownFeature)
	}
	return d.X, d.Y, nil
}

// Point returns row's coordinates in cell c.
func (t *Trellis) Point(row Row, c Cell) r2.Vec {
	return r2.Vec{X: row.Fields[c.X], Y: row.Fields[c.Y]}
}

// Points returns every row's coordinates in cell c, in row order.
func (t *Trellis) Points(c Cell) []r2.Vec {
	out := make([]r2.Vec, len(t.ds.Rows))
	for i, r := range t.ds.Rows {
		out[i] = t.Point(r, c)
	}
	return out
}

// Brushed returns the IDs of rows whose coordinates in cell c fall inside
// rect, bounds included. An empty rect selects nothing.
func (t *Trellis) Brushed(rect r2.Box, c Cell) []int {
	rect = rect.Canon()
	if rect.Empty() {
		return nil
	}
	var ids []int
	for _, r := range t.ds.Rows {
		if rect.Contains(t.Point(r, c)) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
