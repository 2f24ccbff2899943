package ops

import "github.com/relagraph/digraph/graph"

// Seq marks an attribute value as sequential for AddNodes/AddEdges: each of
// its elements contributes one branch of the cartesian product, rather than
// being stored as a single slice-valued attribute. Plain Go slices can't be
// told apart from a deliberately slice-shaped attribute value, so the
// cartesian-product contract is opted into explicitly through this type —
// the same disambiguation graph.QueryValues applies to queries.
type Seq []any

// cartesian expands attrs into one concrete attribute map per combination
// of its Seq-valued keys; non-Seq keys pass through unchanged into every
// combination. An attrs map with no Seq values yields exactly one
// combination: attrs itself.
func cartesian(attrs map[graph.Label]any) []map[graph.Label]any {
	var seqKeys []graph.Label
	var seqVals [][]any
	plain := make(map[graph.Label]any)
	for k, v := range attrs {
		if s, ok := v.(Seq); ok {
			seqKeys = append(seqKeys, k)
			seqVals = append(seqVals, []any(s))
			continue
		}
		plain[k] = v
	}
	if len(seqKeys) == 0 {
		return []map[graph.Label]any{plain}
	}

	combos := []map[graph.Label]any{{}}
	for i, k := range seqKeys {
		var next []map[graph.Label]any
		for _, base := range combos {
			for _, val := range seqVals[i] {
				m := make(map[graph.Label]any, len(base)+1)
				for bk, bv := range base {
					m[bk] = bv
				}
				m[k] = val
				next = append(next, m)
			}
		}
		combos = next
	}

	out := make([]map[graph.Label]any, 0, len(combos))
	for _, combo := range combos {
		m := make(map[graph.Label]any, len(combo)+len(plain))
		for k, v := range plain {
			m[k] = v
		}
		for k, v := range combo {
			m[k] = v
		}
		out = append(out, m)
	}
	return out
}
