package clustergram

import (
	"fmt"
	"strings"
)

// Linkage selects how the distance between two clusters is derived from the
// distances between their leaves.
type Linkage string

const (
	// SingleLinkage uses the closest leaf pair.
	SingleLinkage Linkage = "single"
	// CompleteLinkage uses the farthest leaf pair.
	CompleteLinkage Linkage = "complete"
	// AverageLinkage uses the mean over all leaf pairs (UPGMA).
	AverageLinkage Linkage = "average"
)

// ParseLinkage resolves a linkage tag. The empty tag selects single linkage.
func ParseLinkage(tag string) (Linkage, error) {
	switch l := Linkage(strings.ToLower(strings.TrimSpace(tag))); l {
	case "":
		return SingleLinkage, nil
	case SingleLinkage, CompleteLinkage, AverageLinkage:
		return l, nil
	default:
		return "", fmt.Errorf("clustergram: linkage %q: %w", tag, ErrInvalidLinkage)
	}
}

func (l Linkage) valid() bool {
	switch l {
	case SingleLinkage, CompleteLinkage, AverageLinkage:
		return true
	}
	return false
}

// update returns the distance from the union of clusters a and b to some
// third cluster, given the cached distances da and db from a and b to it.
// This is the Lance-Williams recurrence; it yields the min, max or mean over
// the leaf-pair submatrix without visiting the leaves again.
func (l Linkage) update(da, db float64, na, nb int) float64 {
	switch l {
	case CompleteLinkage:
		return max(da, db)
	case AverageLinkage:
		return (float64(na)*da + float64(nb)*db) / float64(na+nb)
	default:
		return min(da, db)
	}
}
