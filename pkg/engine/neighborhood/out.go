package neighborhood

import (
	"math/bits"
	"strconv"
	"strings"
)

// Out is the set of columns a node leads to on the next row, one bit per
// column. Pushing a value twice keeps a single edge.
type Out uint8

// Push adds value to the set.
func (o *Out) Push(value int) {
	if value < 0 || value >= Width {
		violation("out of range", value, o)
	}
	*o |= 1 << value
}

// Remove deletes value from the set.
func (o *Out) Remove(value int) {
	*o &^= 1 << value
}

// Has reports whether value is in the set.
func (o Out) Has(value int) bool {
	return value >= 0 && value < Width && o&(1<<value) != 0
}

// IsEmpty reports whether the node has no outgoing edge.
func (o Out) IsEmpty() bool {
	return o == 0
}

// Len returns the number of outgoing edges.
func (o Out) Len() int {
	return bits.OnesCount8(uint8(o))
}

// Min returns the leftmost destination.
func (o Out) Min() (int, bool) {
	if o == 0 {
		return 0, false
	}
	return bits.TrailingZeros8(uint8(o)), true
}

// Max returns the rightmost destination.
func (o Out) Max() (int, bool) {
	if o == 0 {
		return 0, false
	}
	return 7 - bits.LeadingZeros8(uint8(o)), true
}

// ClampFromLeft raises next to this set's rightmost destination. It is
// applied with the left sibling's set so paths never cross it.
func (o Out) ClampFromLeft(next int) int {
	if hi, ok := o.Max(); ok {
		return max(hi, next)
	}
	return next
}

// ClampFromRight lowers next to this set's leftmost destination. It is
// applied with the right sibling's set.
func (o Out) ClampFromRight(next int) int {
	if lo, ok := o.Min(); ok {
		return min(lo, next)
	}
	return next
}

// Values returns the destinations in ascending order.
func (o Out) Values() []int {
	values := make([]int, 0, o.Len())
	for v := 0; v < Width; v++ {
		if o.Has(v) {
			values = append(values, v)
		}
	}
	return values
}

func (o Out) String() string {
	var b strings.Builder
	for _, v := range o.Values() {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
