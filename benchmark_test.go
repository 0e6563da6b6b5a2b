package clustergram

import (
	"math"
	"testing"
)

// --- Pairwise Distances ---

func benchPairwiseDistances(b *testing.B, n int) {
	b.Helper()
	vectors := randomVectors(n, 2, 42)
	metric := EuclideanMetric{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PairwiseDistances(vectors, metric); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPairwiseDistances_100(b *testing.B)  { benchPairwiseDistances(b, 100) }
func BenchmarkPairwiseDistances_500(b *testing.B)  { benchPairwiseDistances(b, 500) }
func BenchmarkPairwiseDistances_1000(b *testing.B) { benchPairwiseDistances(b, 1000) }

// --- Agglomeration ---

func benchBuildClustering(b *testing.B, n int, linkage Linkage) {
	b.Helper()
	vectors := randomVectors(n, 2, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildClustering(vectors, EuclideanMetric{}, linkage); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildClustering_Single_100(b *testing.B)  { benchBuildClustering(b, 100, SingleLinkage) }
func BenchmarkBuildClustering_Single_500(b *testing.B)  { benchBuildClustering(b, 500, SingleLinkage) }
func BenchmarkBuildClustering_Average_500(b *testing.B) { benchBuildClustering(b, 500, AverageLinkage) }

// --- Layout ---

func benchLayout(b *testing.B, n int) {
	b.Helper()
	res, err := BuildClustering(randomVectors(n, 2, 42), EuclideanMetric{}, SingleLinkage)
	if err != nil {
		b.Fatal(err)
	}
	h := ToHierarchy(res.Root)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Layout(h, 2*math.Pi, 300); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLayout_500(b *testing.B)  { benchLayout(b, 500) }
func BenchmarkLayout_1000(b *testing.B) { benchLayout(b, 1000) }

// --- Selection ---

func BenchmarkSelectFromNode_500(b *testing.B) {
	vecs := randomVectors(500, 2, 42)
	rows := make([]Row, len(vecs))
	for i, v := range vecs {
		rows[i] = Row{Label: "r", Fields: map[string]float64{"x": v.Components[0], "y": v.Components[1]}}
	}
	ds, err := NewDataset([]string{"x", "y"}, rows)
	if err != nil {
		b.Fatal(err)
	}
	_, p := buildPipeline(b, ds)
	ctrl, err := NewController(ds, "x", "y", ControllerOptions{})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctrl.SelectFromNode(p.Node(i % p.Len()))
	}
}
