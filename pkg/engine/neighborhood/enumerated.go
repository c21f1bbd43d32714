package neighborhood

import (
	"fmt"
	"strings"
)

// Shape is the number of columns an Enumerated neighborhood spans.
type Shape uint8

const (
	Zero Shape = iota
	One
	Two
	Three
)

// Enumerated is a fixed-size tagged neighborhood: a shape, the first occupied
// column and up to three consecutive multiplicities. A Three whose middle
// multiplicity is zero is hollow: both outer columns are occupied, the
// middle one is not.
type Enumerated struct {
	shape  Shape
	first  uint8
	counts [3]uint8
}

// NewEnumerated returns an empty Enumerated neighborhood.
func NewEnumerated() In {
	return &Enumerated{}
}

// MakeEnumerated builds a shape starting at first with the given
// multiplicities. Only the middle of three counts may be zero.
func MakeEnumerated(first int, counts ...int) (Enumerated, error) {
	var e Enumerated
	if len(counts) > 3 {
		return e, fmt.Errorf("neighborhood: %d multiplicities, want at most 3", len(counts))
	}
	if len(counts) == 0 {
		return e, nil
	}
	if first < 0 || first+len(counts) > Width {
		return e, fmt.Errorf("neighborhood: window %d+%d outside the grid", first, len(counts))
	}
	total := 0
	for i, c := range counts {
		if c < 0 || (c == 0 && (i != 1 || len(counts) != 3)) {
			return e, fmt.Errorf("neighborhood: multiplicity %d at offset %d", c, i)
		}
		total += c
		e.counts[i] = uint8(c)
	}
	if total > MaxMultiplicity {
		return e, fmt.Errorf("neighborhood: total multiplicity %d over budget", total)
	}
	e.shape = Shape(len(counts))
	e.first = uint8(first)
	return e, nil
}

// Shape returns the tag.
func (e Enumerated) Shape() Shape {
	return e.shape
}

// Hollow reports whether the middle of a three-column window is unoccupied.
func (e Enumerated) Hollow() bool {
	return e.shape == Three && e.counts[1] == 0
}

// Plus returns the neighborhood with one more occurrence of value, or false
// when value cannot join it.
func (e Enumerated) Plus(value int) (Enumerated, bool) {
	if value < 0 || value >= Width || e.total() >= MaxMultiplicity {
		return e, false
	}
	a := int(e.first)
	switch e.shape {
	case Zero:
		return Enumerated{shape: One, first: uint8(value), counts: [3]uint8{1}}, true
	case One:
		m := e.counts[0]
		switch value {
		case a:
			e.counts[0]++
			return e, true
		case a + 1:
			return Enumerated{shape: Two, first: e.first, counts: [3]uint8{m, 1}}, true
		case a - 1:
			return Enumerated{shape: Two, first: uint8(value), counts: [3]uint8{1, m}}, true
		case a + 2:
			return Enumerated{shape: Three, first: e.first, counts: [3]uint8{m, 0, 1}}, true
		case a - 2:
			return Enumerated{shape: Three, first: uint8(value), counts: [3]uint8{1, 0, m}}, true
		}
	case Two:
		m1, m2 := e.counts[0], e.counts[1]
		switch value {
		case a, a + 1:
			e.counts[value-a]++
			return e, true
		case a + 2:
			return Enumerated{shape: Three, first: e.first, counts: [3]uint8{m1, m2, 1}}, true
		case a - 1:
			return Enumerated{shape: Three, first: uint8(value), counts: [3]uint8{1, m1, m2}}, true
		}
	case Three:
		if value >= a && value <= a+2 {
			e.counts[value-a]++
			return e, true
		}
	}
	return e, false
}

// Push adds one occurrence of value.
func (e *Enumerated) Push(value int) {
	next, ok := e.Plus(value)
	if !ok {
		violation("no transition", value, e)
	}
	*e = next
}

// Min returns the first occupied column.
func (e Enumerated) Min() (int, bool) {
	if e.shape == Zero {
		return 0, false
	}
	return int(e.first), true
}

// Max returns the last occupied column.
func (e Enumerated) Max() (int, bool) {
	if e.shape == Zero {
		return 0, false
	}
	return int(e.first) + int(e.shape) - 1, true
}

// Entries returns the occupied columns in ascending order.
func (e Enumerated) Entries() []Entry {
	entries := make([]Entry, 0, e.shape)
	for i := 0; i < int(e.shape); i++ {
		if e.counts[i] > 0 {
			entries = append(entries, Entry{Value: int(e.first) + i, Count: int(e.counts[i])})
		}
	}
	return entries
}

// IsEmpty reports whether the shape is Zero.
func (e Enumerated) IsEmpty() bool {
	return e.shape == Zero
}

func (e Enumerated) String() string {
	if e.shape == Zero {
		return "[]"
	}
	var b strings.Builder
	for i := 0; i < int(e.shape); i++ {
		repeatDigit(&b, int(e.first)+i, int(e.counts[i]))
	}
	return b.String()
}

func (e Enumerated) total() int {
	return int(e.counts[0]) + int(e.counts[1]) + int(e.counts[2])
}
