package clustergram

import (
	"slices"
	"strconv"
	"strings"
)

// Sequence returns the breadcrumb trail for n: its ancestors highest first,
// then n itself, excluding the root. The trail of the root is empty.
func (p *Partition) Sequence(n *PartitionedNode) []*PartitionedNode {
	if n.Parent < 0 {
		return nil
	}
	seq := p.AncestorsOf(n)
	slices.Reverse(seq)
	return append(seq, n)
}

// IsHighlighted reports whether n stays opaque while active is hovered,
// i.e. whether n lies on active's breadcrumb trail.
func (p *Partition) IsHighlighted(n, active *PartitionedNode) bool {
	for cur := active; cur != nil && cur.Parent >= 0; cur = p.Parent(cur) {
		if cur.Index == n.Index {
			return true
		}
	}
	return false
}

// Percentage formats n's share of the total weight with three significant
// digits, e.g. "50.0%". Shares below 0.1% read "< 0.1%".
func (p *Partition) Percentage(n *PartitionedNode) string {
	total := p.Total()
	if total == 0 {
		return "< 0.1%"
	}
	pct := 100 * n.Value / total
	if pct < 0.1 {
		return "< 0.1%"
	}
	return toPrecision(pct, 3) + "%"
}

// toPrecision formats v with the given number of significant digits, keeping
// trailing zeros. The exponent is taken after rounding, so 99.96 becomes
// "100" and 9.996 becomes "10.0".
func toPrecision(v float64, digits int) string {
	if v == 0 {
		return strconv.FormatFloat(0, 'f', digits-1, 64)
	}
	sci := strconv.FormatFloat(v, 'e', digits-1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	decimals := max(digits-1-exp, 0)
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
