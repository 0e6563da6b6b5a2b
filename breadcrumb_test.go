package clustergram

import (
	"math"
	"testing"
)

func TestSequence(t *testing.T) {
	_, p := buildPipeline(t, fourPoints(t))

	if seq := p.Sequence(p.Root()); len(seq) != 0 {
		t.Errorf("root trail should be empty, got %d nodes", len(seq))
	}

	pair := p.Node(p.Root().Children[1])
	leaf := p.Node(pair.Children[0])
	seq := p.Sequence(leaf)
	if len(seq) != 2 || seq[0] != pair || seq[1] != leaf {
		t.Fatalf("leaf trail = %v, want [pair, leaf]", seq)
	}

	if seq := p.Sequence(pair); len(seq) != 1 || seq[0] != pair {
		t.Errorf("pair trail = %v, want [pair]", seq)
	}
}

func TestPercentage(t *testing.T) {
	_, p := buildPipeline(t, fourPoints(t))

	pair := p.Node(p.Root().Children[0])
	leaf := p.Node(pair.Children[0])
	if got := p.Percentage(pair); got != "50.0%" {
		t.Errorf("pair = %q, want 50.0%%", got)
	}
	if got := p.Percentage(leaf); got != "25.0%" {
		t.Errorf("leaf = %q, want 25.0%%", got)
	}
	if got := p.Percentage(p.Root()); got != "100%" {
		t.Errorf("root = %q, want 100%%", got)
	}

	lp, err := Layout(lopsided(), 2*math.Pi, 300)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := lp.Percentage(lp.Node(2)); got != "< 0.1%" {
		t.Errorf("tiny share = %q, want < 0.1%%", got)
	}
	if got := lp.Percentage(lp.Node(1)); got != "100.0%" {
		t.Errorf("heavy share = %q, want 100.0%%", got)
	}
}

func TestToPrecision(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{50, "50.0"},
		{25, "25.0"},
		{100, "100"},
		{33.3333, "33.3"},
		{7.5, "7.50"},
		{0.5, "0.500"},
		{0.05, "0.0500"},
		{123.456, "123"},
		{0, "0.00"},
		// Rounding carries into a new leading digit.
		{99.96, "100"},
		{9.996, "10.0"},
		{0.9996, "1.00"},
	}
	for _, tt := range tests {
		if got := toPrecision(tt.v, 3); got != tt.want {
			t.Errorf("toPrecision(%v, 3) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestIsHighlighted(t *testing.T) {
	_, p := buildPipeline(t, fourPoints(t))

	left := p.Node(p.Root().Children[0])
	right := p.Node(p.Root().Children[1])
	leaf := p.Node(left.Children[0])
	sibling := p.Node(left.Children[1])

	if !p.IsHighlighted(leaf, leaf) {
		t.Error("hovered node should be highlighted")
	}
	if !p.IsHighlighted(left, leaf) {
		t.Error("ancestor of hovered node should be highlighted")
	}
	if p.IsHighlighted(sibling, leaf) {
		t.Error("sibling should fade")
	}
	if p.IsHighlighted(right, leaf) {
		t.Error("other branch should fade")
	}
	if p.IsHighlighted(p.Root(), leaf) {
		t.Error("root is not on the trail")
	}
}
