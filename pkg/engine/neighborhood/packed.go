package neighborhood

import (
	"fmt"
	"math"
	"sync"
)

// Packed is an index into the shape table. Code 0 is the empty neighborhood.
type Packed uint16

const invalidCode Packed = math.MaxUint16

type packedTables struct {
	shapes []Enumerated
	index  map[Enumerated]Packed
	push   [][Width]Packed
	min    []int8
	max    []int8
}

var (
	tablesOnce sync.Once
	tables     *packedTables
)

// loadTables builds the transition tables once. Transitions are computed by
// replaying each shape into a Dynamic neighborhood, so the packed encoding
// never shares a code path with Enumerated.Plus.
func loadTables() *packedTables {
	tablesOnce.Do(func() {
		t := &packedTables{shapes: Shapes()}
		t.index = make(map[Enumerated]Packed, len(t.shapes))
		for code, shape := range t.shapes {
			t.index[shape] = Packed(code)
		}
		t.push = make([][Width]Packed, len(t.shapes))
		t.min = make([]int8, len(t.shapes))
		t.max = make([]int8, len(t.shapes))
		for code, shape := range t.shapes {
			d := dynamicOf(shape)
			t.min[code], t.max[code] = -1, -1
			if lo, ok := d.Min(); ok {
				t.min[code] = int8(lo)
			}
			if hi, ok := d.Max(); ok {
				t.max[code] = int8(hi)
			}
			for value := 0; value < Width; value++ {
				t.push[code][value] = invalidCode
				next, ok := tryPush(d.Clone(), value)
				if !ok {
					continue
				}
				nextCode, found := t.index[enumeratedOf(next)]
				if !found {
					panic(fmt.Sprintf("neighborhood: push %d onto %s leaves the shape table", value, d))
				}
				t.push[code][value] = nextCode
			}
		}
		tables = t
	})
	return tables
}

func dynamicOf(e Enumerated) *Dynamic {
	d := &Dynamic{}
	for _, entry := range e.Entries() {
		for i := 0; i < entry.Count; i++ {
			d.entries = append(d.entries, Entry{Value: entry.Value, Count: 1})
		}
	}
	return d
}

func tryPush(d *Dynamic, value int) (next *Dynamic, ok bool) {
	defer func() {
		if recover() != nil {
			next, ok = nil, false
		}
	}()
	d.Push(value)
	return d, true
}

func enumeratedOf(d *Dynamic) Enumerated {
	counts := Counts(d)
	lo, ok := d.Min()
	if !ok {
		return Enumerated{}
	}
	hi, _ := d.Max()
	return mustEnumerated(lo, counts[lo:hi+1]...)
}

// NewPacked returns an empty Packed neighborhood.
func NewPacked() In {
	p := Packed(0)
	return &p
}

// PackedFrom returns the code of an Enumerated shape.
func PackedFrom(e Enumerated) (Packed, bool) {
	code, ok := loadTables().index[e]
	return code, ok
}

// Enumerated expands the code back into its shape.
func (p Packed) Enumerated() Enumerated {
	return loadTables().shapes[p]
}

// Plus returns the code after one more occurrence of value.
func (p Packed) Plus(value int) (Packed, bool) {
	if value < 0 || value >= Width {
		return p, false
	}
	next := loadTables().push[p][value]
	return next, next != invalidCode
}

// Push adds one occurrence of value.
func (p *Packed) Push(value int) {
	next, ok := p.Plus(value)
	if !ok {
		violation("no transition", value, p)
	}
	*p = next
}

// Min returns the first occupied column.
func (p Packed) Min() (int, bool) {
	v := loadTables().min[p]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// Max returns the last occupied column.
func (p Packed) Max() (int, bool) {
	v := loadTables().max[p]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// Entries returns the occupied columns in ascending order.
func (p Packed) Entries() []Entry {
	return p.Enumerated().Entries()
}

// IsEmpty reports whether p is the empty code.
func (p Packed) IsEmpty() bool {
	return p == 0
}

func (p Packed) String() string {
	return p.Enumerated().String()
}
