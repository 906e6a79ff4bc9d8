package components

import (
	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Connected returns the number of components and a label per node.
func Connected(el *edgelist.EdgeList) (int, []int64, error) {
	view, err := adjacency.Undirected(el)
	if err != nil {
		return 0, nil, err
	}
	rows := view.Out
	n := rows.Len()

	labels := make([]int64, n)
	for i := range labels {
		labels[i] = -1
	}

	count := 0
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if labels[start] != -1 {
			continue
		}
		label := int64(count)
		labels[start] = label
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range rows.Neighbors(queue[qi]) {
				if labels[nb] == -1 {
					labels[nb] = label
					queue = append(queue, nb)
				}
			}
		}
		count++
	}

	return count, labels, nil
}

// Count returns only the number of components.
func Count(el *edgelist.EdgeList) (int, error) {
	count, _, err := Connected(el)

	return count, err
}

// Canonical reports whether labels are contiguous in [0, count) and numbered
// in order of first appearance. Backends are held to this shape.
func Canonical(count int, labels []int64) bool {
	next := int64(0)
	for _, l := range labels {
		switch {
		case l < 0 || l > next:
			return false
		case l == next:
			next++
		}
	}

	return next == int64(count)
}
