// Package clustergram computes the data behind a linked radial dendrogram
// ("sunburst") and scatterplot matrix ("trellis") for a small labeled dataset.
//
// Two numeric features of every row are clustered bottom-up into a binary
// merge tree. The tree becomes a layout hierarchy, which is partitioned into
// nested arcs whose angle is proportional to the number of points beneath
// them. A cross-filter controller keeps one shared selection of rows: hovering
// an arc highlights its points in every scatterplot, and brushing a
// scatterplot replaces that highlight with the brushed points.
//
// Basic usage:
//
//	res, err := clustergram.BuildClustering(vectors, clustergram.EuclideanMetric{}, clustergram.SingleLinkage)
//	h := clustergram.ToHierarchy(res.Root)
//	p, err := clustergram.Layout(h, 2*math.Pi, 300)
//	for _, arc := range p.Visible() {
//		// draw arc.AngleStart..arc.AngleEnd() between arc.RadiusInner and arc.RadiusOuter
//	}
//
// Or let a View wire everything from a data provider:
//
//	v, err := clustergram.NewView(ctx, dataset, clustergram.DefaultOptions())
//	v.Controller().OnSelectionChanged(func(s clustergram.Selection) {
//		// repaint: s.Contains(row.ID) is highlighted
//	})
//	v.Controller().SelectFromNode(v.Partition().Root())
//
// # Linkage selection
//
// Cluster distances are derived from a leaf-pair distance matrix computed once
// per clustering. SingleLinkage (the default) uses the closest pair,
// CompleteLinkage the farthest and AverageLinkage the mean. Ties between
// equally close pairs go to the pair formed earliest, so identical input
// always yields the identical tree.
package clustergram
