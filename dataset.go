package clustergram

import (
	"context"
	"fmt"
)

// Row is one record of the dataset: a class label plus named numeric fields.
// ID is the row identifier used in selections.
type Row struct {
	ID     int
	Label  string
	Fields map[string]float64
}

// Value returns the named field and whether the row has it.
func (r Row) Value(feature string) (float64, bool) {
	v, ok := r.Fields[feature]
	return v, ok
}

// Dataset is a finished in-memory sequence of rows. Features lists the numeric
// fields in display order; it is the trait list of the scatterplot matrix.
type Dataset struct {
	Features []string
	Rows     []Row
}

// Provider supplies the dataset once. Fetching, retrying and paging are the
// provider's business; the core only consumes the finished rows.
type Provider interface {
	Fetch(ctx context.Context) (*Dataset, error)
}

// Fetch lets an in-memory dataset act as its own provider.
func (d *Dataset) Fetch(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDataset builds a dataset from rows, assigning row IDs by position.
// Every row must carry every feature.
func NewDataset(features []string, rows []Row) (*Dataset, error) {
	out := make([]Row, len(rows))
	for i, r := range rows {
		for _, f := range features {
			if _, ok := r.Fields[f]; !ok {
				return nil, fmt.Errorf("clustergram: row %d has no field %q: %w", i, f, ErrUnknownFeature)
			}
		}
		out[i] = Row{ID: i, Label: r.Label, Fields: r.Fields}
	}
	return &Dataset{
		Features: append([]string(nil), features...),
		Rows:     out,
	}, nil
}

// HasFeature reports whether feature is one of the dataset's numeric fields.
func (d *Dataset) HasFeature(feature string) bool {
	for _, f := range d.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Column returns the values of one feature across all rows, in row order.
func (d *Dataset) Column(feature string) ([]float64, error) {
	if !d.HasFeature(feature) {
		return nil, fmt.Errorf("clustergram: column %q: %w", feature, ErrUnknownFeature)
	}
	col := make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		col[i] = r.Fields[feature]
	}
	return col, nil
}

// Vectors projects every row onto the given features, in order.
func (d *Dataset) Vectors(features ...string) ([]FeatureVector, error) {
	for _, f := range features {
		if !d.HasFeature(f) {
			return nil, fmt.Errorf("clustergram: vectors over %q: %w", f, ErrUnknownFeature)
		}
	}
	vectors := make([]FeatureVector, len(d.Rows))
	for i, r := range d.Rows {
		comps := make([]float64, len(features))
		for j, f := range features {
			comps[j] = r.Fields[f]
		}
		vectors[i] = FeatureVector{Row: r.ID, Label: r.Label, Components: comps}
	}
	return vectors, nil
}
