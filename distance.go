package clustergram

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures how far apart two equal-length component slices are.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

// Metric names accepted by MetricByName.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
	MetricCosine    = "cosine"
)

// MetricByName resolves a metric tag. The empty name selects Euclidean.
func MetricByName(name string) (DistanceMetric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MetricEuclidean:
		return EuclideanMetric{}, nil
	case MetricManhattan:
		return ManhattanMetric{}, nil
	case MetricChebyshev:
		return ChebyshevMetric{}, nil
	case MetricCosine:
		return CosineMetric{}, nil
	default:
		return nil, fmt.Errorf("clustergram: metric %q: %w", name, ErrInvalidMetric)
	}
}

// metricName returns the tag for a built-in metric, or its Go type otherwise.
func metricName(m DistanceMetric) string {
	switch m := m.(type) {
	case EuclideanMetric:
		return MetricEuclidean
	case ManhattanMetric:
		return MetricManhattan
	case ChebyshevMetric:
		return MetricChebyshev
	case CosineMetric:
		return MetricCosine
	case MinkowskiMetric:
		return fmt.Sprintf("minkowski(p=%g)", m.P)
	default:
		return fmt.Sprintf("%T", m)
	}
}

// PairwiseDistances computes the full symmetric leaf-pair distance matrix.
// Entry (i, j) is the distance between vectors[i] and vectors[j].
func PairwiseDistances(vectors []FeatureVector, metric DistanceMetric) (*mat.SymDense, error) {
	if _, err := checkDims(vectors); err != nil {
		return nil, err
	}
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	result := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			result.SetSym(i, j, metric.Distance(vectors[i].Components, vectors[j].Components))
		}
	}
	return result, nil
}
