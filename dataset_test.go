package clustergram

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestNewDataset_AssignsIDs(t *testing.T) {
	ds := fourPoints(t)
	for i, r := range ds.Rows {
		if r.ID != i {
			t.Errorf("row %d has ID %d", i, r.ID)
		}
	}
	if v, ok := ds.Rows[3].Value("y"); !ok || v != 6 {
		t.Errorf("row 3 y = %v,%v", v, ok)
	}
	if _, ok := ds.Rows[3].Value("z"); ok {
		t.Error("unexpected field z")
	}
}

func TestNewDataset_MissingField(t *testing.T) {
	_, err := NewDataset([]string{"x", "y"}, []Row{
		{Fields: map[string]float64{"x": 1, "y": 2}},
		{Fields: map[string]float64{"x": 1}},
	})
	if !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}
}

func TestDataset_ColumnAndVectors(t *testing.T) {
	ds := fourPoints(t)

	col, err := ds.Column("x")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if !slices.Equal(col, []float64{0, 0, 5, 5}) {
		t.Errorf("x column = %v", col)
	}
	if _, err := ds.Column("z"); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}

	vecs, err := ds.Vectors("y", "x")
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}
	if len(vecs) != 4 || !slices.Equal(vecs[1].Components, []float64{1, 0}) {
		t.Errorf("vectors = %v", vecs)
	}
	if vecs[2].Label != "B" || vecs[2].Row != 2 {
		t.Errorf("vector 2 = %+v", vecs[2])
	}
	if _, err := ds.Vectors("x", "z"); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}
}

func TestDataset_Fetch(t *testing.T) {
	ds := fourPoints(t)
	got, err := ds.Fetch(context.Background())
	if err != nil || got != ds {
		t.Fatalf("Fetch = %p, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ds.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoadIrisFixture(t *testing.T) {
	ds := loadIris(t)
	if len(ds.Rows) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(ds.Rows))
	}
	counts := map[string]int{}
	for _, r := range ds.Rows {
		counts[r.Label]++
	}
	for _, species := range []string{"setosa", "versicolor", "virginica"} {
		if counts[species] != 8 {
			t.Errorf("%s: %d rows, want 8", species, counts[species])
		}
	}
}
