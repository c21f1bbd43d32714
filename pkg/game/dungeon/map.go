// Package dungeon generates act maps: the path skeleton, the room placed on
// every reachable node, and the burning elite drawn afterwards.
package dungeon

import (
	"spireseed/pkg/engine/neighborhood"
	"spireseed/pkg/engine/rng"
)

const (
	Width         = neighborhood.Width
	Height        = 15
	Paths         = 6
	LastPosition  = Width - 1
	RestRow       = Height - 1
	BeforeRestRow = RestRow - 1
	TreasureRow   = 8
)

// Map is a generated act map.
type Map struct {
	skeleton  *Skeleton
	kinds     [Height][Width]Kind
	ascension bool
}

type options struct {
	factory neighborhood.Factory
}

// Option configures Generate.
type Option func(*options)

// WithNeighborhood selects the in-neighborhood encoding. The generated map
// does not depend on the choice.
func WithNeighborhood(f neighborhood.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// Generate builds the map drawn by src. src must be the act's map RNG; it
// is left positioned for the burning-elite draws.
func Generate(src rng.Source, ascension bool, opts ...Option) *Map {
	o := options{factory: neighborhood.NewDynamic}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map{
		skeleton:  GenerateSkeleton(src, o.factory),
		ascension: ascension,
	}
	m.assignRooms(src, ascension)
	return m
}

// Skeleton returns the map's path graph.
func (m *Map) Skeleton() *Skeleton {
	return m.skeleton
}

// Ascension reports whether the map was generated with raised elite odds.
func (m *Map) Ascension() bool {
	return m.ascension
}

// Kind returns the room at (row, col).
func (m *Map) Kind(row, col int) Kind {
	return m.kinds[row][col]
}

// Kinds returns a copy of one row of rooms.
func (m *Map) Kinds(row int) [Width]Kind {
	return m.kinds[row]
}

// In returns the columns of row-1 leading into (row, col).
func (m *Map) In(row, col int) neighborhood.In {
	return m.skeleton.rows[row][col].In
}

// Out returns the columns of row+1 that (row, col) leads to.
func (m *Map) Out(row, col int) neighborhood.Out {
	return m.skeleton.rows[row][col].Out
}

// CountOut returns the number of nodes on row with an outgoing edge.
func (m *Map) CountOut(row int) int {
	return m.skeleton.rows[row].CountOut()
}

// CountIn returns the number of nodes on row with an incoming edge.
func (m *Map) CountIn(row int) int {
	return m.skeleton.rows[row].CountIn()
}

// IsBottleneck reports whether every path crosses a single node on row.
func (m *Map) IsBottleneck(row int) bool {
	return m.CountOut(row) == 1
}

// Count returns how many nodes hold kind.
func (m *Map) Count(kind Kind) int {
	n := 0
	for row := range m.kinds {
		for _, k := range m.kinds[row] {
			if k == kind {
				n++
			}
		}
	}
	return n
}
