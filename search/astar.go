// Package search implements the Heuristic variant in this file: A* driven
// by g + h, with expanded positions finalized on pop.
package search

// Estimate returns the heuristic h-value from s to goal for 8-directional
// grid movement: with dx = |s.x − goal.x| and dy = |s.y − goal.y|,
//
//	h = max(dx, dy) + 0.5 * min(dx, dy)
//
// The estimate is admissible only when the map's cardinal edge cost is 1.0
// and its diagonal edge cost is 1.5. That cost model is the map
// collaborator's contract; the engine does not verify it.
//
// Estimate(goal, goal) is 0 and the estimate is never negative.
func Estimate(s, goal *State) float64 {
	dx := s.X - goal.X
	if dx < 0 {
		dx = -dx
	}
	dy := s.Y - goal.Y
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + 0.5*float64(dy)
}

// Heuristic is the A* engine: expansion ordered by g + h.
//
// Its closed structure is a strict finalized set: a position enters it only
// when popped, and once finalized it is never reopened or improved. With a
// non-admissible or inconsistent heuristic this choice could return
// suboptimal costs; no guard is attempted.
//
// Not safe for concurrent use; Search resets all internal structures on
// entry, so sequential reuse is fine.
type Heuristic struct {
	engine
	closed map[int]*State // canonical key → finalized state instance
	goal   *State         // fixed goal of the current invocation
}

// NewHeuristic builds an A* engine over the given map collaborator.
// Returns ErrNilMap or ErrEmptyMap on an unusable collaborator.
func NewHeuristic(m Map) (*Heuristic, error) {
	e, err := newEngine(m)
	if err != nil {
		return nil, err
	}

	return &Heuristic{engine: e}, nil
}

// Search runs A* from start to goal.
//
// Returns the minimum path cost and the number of expansions performed
// (every pop counts, the goal's own pop included), or (NoPathCost, 0) when
// the open heap empties without reaching the goal.
func (a *Heuristic) Search(start, goal *State) (float64, int) {
	a.reset()
	a.closed = make(map[int]*State, a.width)
	a.goal = goal
	expanded := 0

	// The start is enqueued with its cost left at the default: its h-value is
	// never added before its own expansion check, which also covers the
	// start-equals-goal case with cost 0.
	a.push(start)

	for a.open.Len() > 0 {
		node := a.pop()
		expanded++

		if node.Equals(goal) {
			return node.Cost, expanded
		}

		// Finalize: this position is never reconsidered.
		a.closed[a.key(node)] = node

		for _, succ := range a.m.Successors(node) {
			k := a.key(succ)
			if _, done := a.closed[k]; done {
				continue
			}

			if cur, inOpen := a.index[k]; inOpen {
				// Duplicate of a live open entry. On a strictly cheaper g,
				// overwrite the entry's g and cost in place and restore heap
				// order; the heap and the index share the record, so the
				// update is reflected everywhere at once.
				if succ.G < cur.G {
					cur.G = succ.G
					cur.Cost = cur.G + Estimate(cur, a.goal)
					a.fix(cur)
				}

				continue
			}

			succ.H = Estimate(succ, a.goal)
			succ.Cost = succ.G + succ.H
			a.push(succ)
		}
	}

	return NoPathCost, 0
}
