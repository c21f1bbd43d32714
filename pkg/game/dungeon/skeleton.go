package dungeon

import (
	"spireseed/pkg/engine/neighborhood"
	"spireseed/pkg/engine/rng"
)

// Skeleton is the path graph of a map, before any room is assigned.
type Skeleton struct {
	rows [Height]Row
}

func newSkeleton(factory neighborhood.Factory) *Skeleton {
	s := &Skeleton{}
	for i := range s.rows {
		s.rows[i] = newRow(factory)
	}
	return s
}

// GenerateSkeleton draws the six paths of a map and drops the redundant
// first-row edges.
func GenerateSkeleton(src rng.Source, factory neighborhood.Factory) *Skeleton {
	s := newSkeleton(factory)
	s.createPaths(src)
	s.dedupFirstRow()
	return s
}

// Row returns row i. The caller must not modify it.
func (s *Skeleton) Row(i int) *Row {
	return &s.rows[i]
}

func draw(src rng.Source, n int) int {
	return int(src.NextBounded(uint64(n)))
}

func (s *Skeleton) createPaths(src rng.Source) {
	first := draw(src, Width)
	s.walk(src, first)

	second := draw(src, Width)
	for second == first {
		second = draw(src, Width)
	}
	s.walk(src, second)

	for i := 2; i < Paths; i++ {
		s.walk(src, draw(src, Width))
	}
}

func (s *Skeleton) walk(src rng.Source, position int) {
	for row := 0; row < Height-1; row++ {
		next := s.nextPosition(src, row, position)
		s.addEdge(row, position, next)
		position = next
	}
}

func (s *Skeleton) addEdge(row, position, next int) {
	s.rows[row][position].Out.Push(next)
	s.rows[row+1][next].In.Push(position)
}

func (s *Skeleton) nextPosition(src rng.Source, row, position int) int {
	lo, choices := position-1, 3
	if position == 0 {
		lo, choices = 0, 2
	} else if position == LastPosition {
		choices = 2
	}
	next := lo + draw(src, choices)
	next = s.reroll(src, row, position, next)
	return s.clamp(row, position, next)
}

// reroll redraws next once for every incoming edge at the candidate node
// that comes from another column and whose source meets this path's source
// at a single shared parent.
func (s *Skeleton) reroll(src rng.Source, row, position, next int) int {
	rerolls := 0
	for _, e := range s.rows[row+1][next].In.Entries() {
		if e.Value == position || s.gcaSkip(row, e.Value, position) {
			continue
		}
		rerolls += e.Count
	}
	for i := 0; i < rerolls; i++ {
		switch {
		case next > position:
			next = position + draw(src, 2) - 1
			if next < 0 {
				next = position
			}
		case next == position:
			next = position + draw(src, 3) - 1
			if next > LastPosition {
				next = position - 1
			} else if next < 0 {
				next = position + 1
			}
		default:
			next = position + draw(src, 2)
			if next > LastPosition {
				next = position
			}
		}
	}
	return next
}

// gcaSkip orders the two columns by comparing the parent column against
// the row index, as the game does, and tests their in-neighborhoods.
func (s *Skeleton) gcaSkip(row, parent, position int) bool {
	left, right := position, parent
	if parent < row {
		left, right = parent, position
	}
	return neighborhood.GCASkip(s.rows[row][left].In, s.rows[row][right].In)
}

// clamp keeps the new edge from crossing the edges already leaving the
// neighbouring nodes of the same row.
func (s *Skeleton) clamp(row, position, next int) int {
	if position != 0 {
		next = s.rows[row][position-1].Out.ClampFromLeft(next)
	}
	if position != LastPosition {
		next = s.rows[row][position+1].Out.ClampFromRight(next)
	}
	return next
}

// dedupFirstRow keeps only the leftmost first-row edge into each column of
// row 1. The matching in-edges are left in place.
func (s *Skeleton) dedupFirstRow() {
	var visited [Width]bool
	for position := range s.rows[0] {
		out := &s.rows[0][position].Out
		for _, next := range out.Values() {
			if visited[next] {
				out.Remove(next)
				continue
			}
			visited[next] = true
		}
	}
}

// CountIn returns the number of nodes with an incoming edge over all rows.
func (s *Skeleton) CountIn() int {
	n := 0
	for i := range s.rows {
		n += s.rows[i].CountIn()
	}
	return n
}

// CountOut returns the number of nodes with an outgoing edge over all rows.
func (s *Skeleton) CountOut() int {
	n := 0
	for i := range s.rows {
		n += s.rows[i].CountOut()
	}
	return n
}
