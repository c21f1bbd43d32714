package neighborhood

import "strings"

// Dynamic stores one entry per push, in push order. It is the reference
// encoding the packed tables are generated from.
type Dynamic struct {
	entries []Entry
}

// NewDynamic returns an empty Dynamic neighborhood.
func NewDynamic() In {
	return &Dynamic{}
}

// Push appends value with multiplicity one.
func (d *Dynamic) Push(value int) {
	if value < 0 || value >= Width {
		violation("out of range", value, d)
	}
	if len(d.entries) >= MaxMultiplicity {
		violation("multiplicity budget exhausted", value, d)
	}
	if lo, ok := d.Min(); ok {
		hi, _ := d.Max()
		lo = min(lo, value)
		hi = max(hi, value)
		if hi-lo >= MaxSpan {
			violation("span exceeded", value, d)
		}
	}
	d.entries = append(d.entries, Entry{Value: value, Count: 1})
}

// Min returns the smallest pushed value.
func (d *Dynamic) Min() (int, bool) {
	if len(d.entries) == 0 {
		return 0, false
	}
	m := d.entries[0].Value
	for _, e := range d.entries[1:] {
		m = min(m, e.Value)
	}
	return m, true
}

// Max returns the largest pushed value.
func (d *Dynamic) Max() (int, bool) {
	if len(d.entries) == 0 {
		return 0, false
	}
	m := d.entries[0].Value
	for _, e := range d.entries[1:] {
		m = max(m, e.Value)
	}
	return m, true
}

// Entries returns the pushes in order, each with count one.
func (d *Dynamic) Entries() []Entry {
	return d.entries
}

// IsEmpty reports whether nothing was pushed.
func (d *Dynamic) IsEmpty() bool {
	return len(d.entries) == 0
}

// String lists every occurrence in ascending value order, or "[]".
func (d *Dynamic) String() string {
	if d.IsEmpty() {
		return "[]"
	}
	var counts [Width]int
	for _, e := range d.entries {
		counts[e.Value] += e.Count
	}
	var b strings.Builder
	for value, count := range counts {
		repeatDigit(&b, value, count)
	}
	return b.String()
}

// Clone returns an independent copy.
func (d *Dynamic) Clone() *Dynamic {
	return &Dynamic{entries: append([]Entry(nil), d.entries...)}
}
