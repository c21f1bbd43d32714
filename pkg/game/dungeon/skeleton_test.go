package dungeon

import (
	"testing"

	"spireseed/pkg/engine/neighborhood"
)

// scripted answers NextBounded from a fixed list.
type scripted struct {
	t     *testing.T
	draws []uint64
}

func (s *scripted) NextUint64() uint64 { return s.NextBounded(1 << 63) }

func (s *scripted) NextBounded(n uint64) uint64 {
	if len(s.draws) == 0 {
		s.t.Fatalf("unexpected draw with bound %d", n)
	}
	d := s.draws[0]
	s.draws = s.draws[1:]
	if d >= n {
		s.t.Fatalf("scripted draw %d out of bound %d", d, n)
	}
	return d
}

func (s *scripted) Advance(k int) {}

func TestReroll_EqualColumnNearRightEdge(t *testing.T) {
	cases := []struct {
		name     string
		position int
		parent   int
		draw     uint64
		want     int
	}{
		{"last column drawn right falls back left", 6, 5, 2, 5},
		{"last column stays", 6, 5, 1, 6},
		{"column five may move to the last column", 5, 4, 2, 6},
		{"column five moves left", 5, 4, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSkeleton(neighborhood.NewDynamic)
			// Both columns share a single parent so the incoming edge forces a redraw.
			s.addEdge(2, tc.parent, tc.parent)
			s.addEdge(2, tc.parent, tc.position)
			s.addEdge(3, tc.parent, tc.position)

			src := &scripted{t: t, draws: []uint64{tc.draw}}
			if got := s.reroll(src, 3, tc.position, tc.position); got != tc.want {
				t.Errorf("reroll(position %d) = %d, want %d", tc.position, got, tc.want)
			}
			if len(src.draws) != 0 {
				t.Errorf("%d draws left unused", len(src.draws))
			}
		})
	}
}

func TestReroll_SameColumnEdgeDrawsNothing(t *testing.T) {
	s := newSkeleton(neighborhood.NewDynamic)
	s.addEdge(3, 6, 6)
	src := &scripted{t: t}
	if got := s.reroll(src, 3, 6, 6); got != 6 {
		t.Errorf("reroll = %d, want 6", got)
	}
}
