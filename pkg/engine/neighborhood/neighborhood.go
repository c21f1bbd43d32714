// Package neighborhood provides the adjacency sets attached to each map node.
//
// An in-neighborhood is a multiset of column indices in [0, Width) whose
// occupied values fit inside a window of MaxSpan consecutive columns. Three
// interchangeable encodings are provided: Dynamic (a growable list), Enumerated
// (a fixed-size tagged value) and Packed (a 2-byte index into a precomputed
// shape table). Out-neighborhoods never repeat a value and are stored as a
// 7-bit set.
package neighborhood

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Width is the number of columns on a map row.
	Width = 7
	// MaxSpan is the widest window of columns one neighborhood may occupy.
	MaxSpan = 3
	// MaxMultiplicity is the total number of pushes a neighborhood accepts.
	// A map draws six paths, so no node collects more incoming edges.
	MaxMultiplicity = 6
)

// Entry is one (value, multiplicity) pair of a neighborhood.
type Entry struct {
	Value int
	Count int
}

// In is the capability shared by every in-neighborhood encoding.
type In interface {
	// Push adds one occurrence of value. It panics if the value is outside
	// the grid, would widen the occupied window past MaxSpan, or would exceed
	// MaxMultiplicity.
	Push(value int)
	Min() (int, bool)
	Max() (int, bool)
	// Entries yields (value, count) pairs. Order and grouping are
	// encoding-specific; only the per-value totals are comparable.
	Entries() []Entry
	IsEmpty() bool
	String() string
}

// Factory creates an empty in-neighborhood.
type Factory func() In

// GCASkip reports whether two neighborhoods do not meet at exactly one
// shared value: it is false only when left's maximum equals right's minimum.
func GCASkip(left, right In) bool {
	leftMax, ok := left.Max()
	if !ok {
		return true
	}
	rightMin, ok := right.Min()
	if !ok {
		return true
	}
	return leftMax != rightMin
}

// Counts returns the total multiplicity per column.
func Counts(n In) [Width]int {
	var counts [Width]int
	for _, e := range n.Entries() {
		counts[e.Value] += e.Count
	}
	return counts
}

// Total returns the sum of all multiplicities.
func Total(n In) int {
	total := 0
	for _, e := range n.Entries() {
		total += e.Count
	}
	return total
}

func violation(kind string, value int, n fmt.Stringer) {
	panic(fmt.Sprintf("neighborhood: %s: cannot push %d onto %s", kind, value, n))
}

func repeatDigit(b *strings.Builder, value, count int) {
	b.WriteString(strings.Repeat(strconv.Itoa(value), count))
}
