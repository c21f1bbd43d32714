package dungeon

import "spireseed/pkg/engine/neighborhood"

// Node is one slot of a row: the columns of the previous row leading into
// it and the columns of the next row it leads to.
type Node struct {
	In  neighborhood.In
	Out neighborhood.Out
}

// Row is one floor of the map.
type Row [Width]Node

func newRow(factory neighborhood.Factory) Row {
	var r Row
	for i := range r {
		r[i].In = factory()
	}
	return r
}

// CountIn returns the number of nodes with at least one incoming edge.
func (r *Row) CountIn() int {
	n := 0
	for i := range r {
		if !r[i].In.IsEmpty() {
			n++
		}
	}
	return n
}

// CountOut returns the number of nodes with at least one outgoing edge.
func (r *Row) CountOut() int {
	n := 0
	for i := range r {
		if !r[i].Out.IsEmpty() {
			n++
		}
	}
	return n
}
