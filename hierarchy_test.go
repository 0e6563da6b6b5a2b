package clustergram

import "testing"

func TestToHierarchy_FourPoints(t *testing.T) {
	res := clusterFour(t)
	h := ToHierarchy(res.Root)

	if h.Name != InternalLabel {
		t.Errorf("root name = %q, want %q", h.Name, InternalLabel)
	}
	if h.Size != 0 {
		t.Errorf("internal nodes store no size, got %v", h.Size)
	}
	if len(h.Children) != 2 {
		t.Fatalf("root should have 2 children, got %d", len(h.Children))
	}
	// [left, right] order is preserved.
	if h.Children[0].Cluster != res.Root.Left || h.Children[1].Cluster != res.Root.Right {
		t.Error("children are not in [left, right] order")
	}
	if h.Weight() != 4 {
		t.Errorf("root weight = %v, want 4", h.Weight())
	}

	leaves := h.Leaves()
	if len(leaves) != 4 {
		t.Fatalf("expected 4 leaves, got %d", len(leaves))
	}
	wantNames := []string{"A", "A", "B", "B"}
	for i, l := range leaves {
		if l.Name != wantNames[i] {
			t.Errorf("leaf %d name = %q, want %q", i, l.Name, wantNames[i])
		}
		if l.Size != 1 {
			t.Errorf("leaf %d size = %v, want 1", i, l.Size)
		}
		if l.Children == nil || len(l.Children) != 0 {
			t.Errorf("leaf %d should have an empty, non-nil child list", i)
		}
	}
}

func TestToHierarchy_Nil(t *testing.T) {
	if h := ToHierarchy(nil); h != nil {
		t.Errorf("expected nil, got %+v", h)
	}
}

func TestToHierarchy_StableAcrossBuilds(t *testing.T) {
	res := clusterFour(t)
	a := ToHierarchy(res.Root).Leaves()
	b := ToHierarchy(res.Root).Leaves()
	for i := range a {
		if a[i].Cluster != b[i].Cluster {
			t.Fatalf("leaf order differs at %d between builds", i)
		}
	}
}
