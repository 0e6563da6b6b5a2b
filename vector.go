package clustergram

import "fmt"

// FeatureVector is one input point: its components, the dataset row it came
// from and the row's class label. Treat it as immutable once built.
type FeatureVector struct {
	Row        int
	Label      string
	Components []float64
}

// Dim returns the number of components.
func (v FeatureVector) Dim() int { return len(v.Components) }

// EuclideanDistance returns the L2 distance between a and b.
// Returns ErrDimensionMismatch if their component counts differ.
func EuclideanDistance(a, b FeatureVector) (float64, error) {
	return Distance(EuclideanMetric{}, a, b)
}

// Distance applies metric to a and b after checking their dimensions agree.
func Distance(metric DistanceMetric, a, b FeatureVector) (float64, error) {
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("clustergram: rows %d and %d have %d and %d components: %w",
			a.Row, b.Row, a.Dim(), b.Dim(), ErrDimensionMismatch)
	}
	return metric.Distance(a.Components, b.Components), nil
}

// checkDims returns the shared dimensionality of vectors, or
// ErrDimensionMismatch naming the first vector that disagrees with the first.
func checkDims(vectors []FeatureVector) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	dims := vectors[0].Dim()
	for i, v := range vectors[1:] {
		if v.Dim() != dims {
			return 0, fmt.Errorf("clustergram: vector %d has %d components, want %d: %w",
				i+1, v.Dim(), dims, ErrDimensionMismatch)
		}
	}
	return dims, nil
}
