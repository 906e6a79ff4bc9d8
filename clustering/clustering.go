package clustering

import (
	"github.com/katalvlaran/netsmith/adjacency"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Local returns the local clustering coefficient of every node, in [0, 1].
func Local(el *edgelist.EdgeList) ([]float64, error) {
	view, err := adjacency.Undirected(el)
	if err != nil {
		return nil, err
	}
	rows := view.Out.Simple()
	n := rows.Len()

	sets := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		nb := rows.Neighbors(i)
		sets[i] = make(map[int]struct{}, len(nb))
		for _, j := range nb {
			sets[i][j] = struct{}{}
		}
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		nb := rows.Neighbors(i)
		k := len(nb)
		if k < 2 {
			continue
		}
		var triangles int64
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if linked(sets, nb[a], nb[b]) {
					triangles++
				}
			}
		}
		out[i] = Coefficient(triangles, k)
	}

	return out, nil
}

// linked probes the smaller of the two neighbor sets.
func linked(sets []map[int]struct{}, j, l int) bool {
	if len(sets[j]) > len(sets[l]) {
		j, l = l, j
	}
	_, ok := sets[j][l]

	return ok
}

// Coefficient turns a triangle count and a simple degree into C(i).
// Every backend goes through it so values agree bit for bit.
func Coefficient(triangles int64, k int) float64 {
	if k < 2 {
		return 0
	}

	return 2 * float64(triangles) / (float64(k) * float64(k-1))
}

// Of returns the clustering coefficient of a single node.
func Of(el *edgelist.EdgeList, node int64) (float64, error) {
	if err := edgelist.CheckNode("node", node, el.N()); err != nil {
		return 0, err
	}
	values, err := Local(el)
	if err != nil {
		return 0, err
	}

	return values[node], nil
}

// Average returns the mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, c := range values {
		sum += c
	}

	return sum / float64(len(values))
}
