// Package search implements the UniformCost variant in this file: Dijkstra's
// algorithm driven purely by accumulated path cost.
//
// Bookkeeping here is a relaxed interpretation of a closed list: the map
// tracks the lowest g-value seen so far for every discovered position,
// including positions still waiting in the open heap — a best-distance table
// rather than a strict finalized set. That behavior is deliberate and must
// be preserved; it is not textbook finalize-on-pop Dijkstra.
package search

// UniformCost is the Dijkstra engine: expansion ordered by g alone.
//
// Not safe for concurrent use; Search resets all internal structures on
// entry, so sequential reuse is fine.
type UniformCost struct {
	engine
	closed map[int]float64 // canonical key → lowest g seen so far for that position
}

// NewUniformCost builds a Dijkstra engine over the given map collaborator.
// Returns ErrNilMap or ErrEmptyMap on an unusable collaborator.
func NewUniformCost(m Map) (*UniformCost, error) {
	e, err := newEngine(m)
	if err != nil {
		return nil, err
	}

	return &UniformCost{engine: e}, nil
}

// Search runs Dijkstra's algorithm from start to goal.
//
// Returns the minimum path cost and the number of expansions performed
// (every pop counts, the goal's own pop included), or (NoPathCost, 0) when
// the open heap empties without reaching the goal.
//
// The returned cost is read from the bookkeeping map, not from the popped
// instance's own field: a cheaper duplicate may have updated the recorded
// value after an older copy was enqueued.
func (u *UniformCost) Search(start, goal *State) (float64, int) {
	u.reset()
	u.closed = make(map[int]float64, u.width)
	expanded := 0

	start.G = 0
	start.Cost = 0
	u.push(start)
	u.closed[u.key(start)] = start.Cost

	for u.open.Len() > 0 {
		node := u.pop()
		expanded++

		if node.Equals(goal) {
			return u.closed[u.key(node)], expanded
		}

		for _, succ := range u.m.Successors(node) {
			k := u.key(succ)
			best, seen := u.closed[k]
			switch {
			case !seen:
				// First time this position is discovered: its cost is its g-value.
				succ.Cost = succ.G
				u.push(succ)
				u.closed[k] = succ.Cost
			case succ.G < best:
				// A strictly cheaper path to a known position. Record it, and if
				// the position still sits in the open heap, lower the live entry
				// in place and restore heap order (decrease-key).
				u.closed[k] = succ.G
				if cur, inOpen := u.index[k]; inOpen {
					cur.G = succ.G
					cur.Cost = succ.G
					u.fix(cur)
				}
			default:
				// No improvement; discard the successor.
			}
		}
	}

	return NoPathCost, 0
}
