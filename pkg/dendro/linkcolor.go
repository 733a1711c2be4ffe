// Package dendro colours the links of a dendrogram from the colours of its
// leaves.
//
// A dendrogram with n leaves is described by n-1 merges. Node ids 0..n-1 are
// the leaves; merge i creates node n+i, so a merge may only reference leaves
// and earlier merges.
package dendro

import (
	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
)

// DefaultColour marks a link whose two children disagree.
const DefaultColour = "#808080"

// Merge joins two existing nodes.
type Merge struct {
	Left, Right int
}

// MergeFunc decides the colour of a merge from the colours of its children.
type MergeFunc func(left, right string) string

// SameOrDefault keeps a colour both children share and falls back to def
// otherwise.
func SameOrDefault(def string) MergeFunc {
	return func(left, right string) string {
		if left == right {
			return left
		}
		return def
	}
}

// Fold walks the merges bottom-up and returns the colour of every node:
// leaves first, then one entry per merge. leaves is not modified.
func Fold(merges []Merge, leaves []string, merge MergeFunc) ([]string, error) {
	if merge == nil {
		merge = SameOrDefault(DefaultColour)
	}
	if len(leaves) != len(merges)+1 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"%d merges need %d leaves, got %d", len(merges), len(merges)+1, len(leaves))
	}

	nodes := make([]string, len(leaves), len(leaves)+len(merges))
	copy(nodes, leaves)

	for i, m := range merges {
		id := len(leaves) + i
		for _, child := range [2]int{m.Left, m.Right} {
			if child < 0 || child >= id {
				return nil, apperrors.New(apperrors.ErrCodeInvariantViolation,
					"merge %d references node %d, only 0..%d exist", i, child, id-1)
			}
		}
		nodes = append(nodes, merge(nodes[m.Left], nodes[m.Right]))
	}
	return nodes, nil
}
