package viz

import "sort"

// Ranker orders concepts by attribution magnitude for an output context.
type Ranker struct {
	state *State
}

// NewRanker builds a ranking engine over the view state.
func NewRanker(state *State) *Ranker {
	return &Ranker{state: state}
}

// TopK returns concept ids sorted by descending attribution of each concept
// on outputID, explained from the currently active output row, truncated to
// the state's top-k bound. Ties are broken by ascending concept id so the
// visible button order is reproducible.
//
// When no output is active or the snapshot carries no output attributions it
// returns an empty ranking instead of failing; panels render their initial
// state through exactly that default. outputID itself must come from
// enumerating the dataset, so an out-of-range value is a caller bug and
// panics.
func (r *Ranker) TopK(outputID int) []int {
	s := r.state
	row := s.ActiveOutput()
	if row == None || outputID == None {
		return nil
	}
	d := s.Dataset()
	if d.Outputs == nil || len(d.Outputs.Attributions) == 0 {
		return nil
	}

	vec := d.Outputs.Attributions[row][outputID]
	ids := make([]int, len(vec))
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(a, b int) bool {
		va, vb := vec[ids[a]], vec[ids[b]]
		if va != vb {
			return va > vb
		}
		return ids[a] < ids[b]
	})

	if k := s.TopK(); k != None && k < len(ids) {
		ids = ids[:k]
	}
	return ids
}
