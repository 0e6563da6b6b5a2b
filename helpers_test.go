package clustergram

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// fourPoints is the two-branch dataset used throughout the tests:
// rows 0,1 (label A) sit near the origin, rows 2,3 (label B) near (5,5).
func fourPoints(t testing.TB) *Dataset {
	t.Helper()
	ds, err := NewDataset([]string{"x", "y"}, []Row{
		{Label: "A", Fields: map[string]float64{"x": 0, "y": 0}},
		{Label: "A", Fields: map[string]float64{"x": 0, "y": 1}},
		{Label: "B", Fields: map[string]float64{"x": 5, "y": 5}},
		{Label: "B", Fields: map[string]float64{"x": 5, "y": 6}},
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func vectorsOf(t testing.TB, ds *Dataset, features ...string) []FeatureVector {
	t.Helper()
	v, err := ds.Vectors(features...)
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}
	return v
}

var irisFeatures = []string{"sepal_length", "sepal_width", "x", "y"}

// loadIris reads testdata/iris.json, which has the shape of the demo's
// /iris/find payload: [{"iris": [{...row...}, ...]}].
func loadIris(t testing.TB) *Dataset {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "iris.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var payload []struct {
		Iris []map[string]any `json:"iris"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("fixture has no documents")
	}

	rows := make([]Row, 0, len(payload[0].Iris))
	for _, rec := range payload[0].Iris {
		r := Row{Fields: map[string]float64{}}
		for k, v := range rec {
			switch v := v.(type) {
			case string:
				r.Label = v
			case float64:
				r.Fields[k] = v
			}
		}
		rows = append(rows, r)
	}
	ds, err := NewDataset(irisFeatures, rows)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

// buildPipeline clusters ds over x/y with single linkage and lays it out.
func buildPipeline(t testing.TB, ds *Dataset) (*Result, *Partition) {
	t.Helper()
	res, err := BuildClustering(vectorsOf(t, ds, "x", "y"), EuclideanMetric{}, SingleLinkage)
	if err != nil {
		t.Fatalf("BuildClustering: %v", err)
	}
	p, err := Layout(ToHierarchy(res.Root), 2*math.Pi, 300)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return res, p
}
