// Package filter decides which seeds a sieve keeps.
package filter

import (
	"strings"

	"spireseed/pkg/game/seed"
)

// Filter rejects seeds that lack a property.
type Filter interface {
	Reject(s seed.Seed) bool
	String() string
}

// Not accepts exactly the seeds its operand rejects.
type Not struct {
	Filter Filter
}

func (n Not) Reject(s seed.Seed) bool {
	return !n.Filter.Reject(s)
}

func (n Not) String() string {
	return "not " + group(n.Filter)
}

// All accepts a seed when every filter accepts it. It stops at the first
// rejection.
type All []Filter

func (a All) Reject(s seed.Seed) bool {
	for _, f := range a {
		if f.Reject(s) {
			return true
		}
	}
	return false
}

func (a All) String() string {
	return join(a, " and ")
}

// Any accepts a seed when at least one filter accepts it. An empty Any
// rejects everything.
type Any []Filter

func (a Any) Reject(s seed.Seed) bool {
	for _, f := range a {
		if !f.Reject(s) {
			return false
		}
	}
	return true
}

func (a Any) String() string {
	return join(a, " or ")
}

func join(filters []Filter, sep string) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = group(f)
	}
	return strings.Join(parts, sep)
}

// group parenthesises compound operands.
func group(f Filter) string {
	switch f := f.(type) {
	case All:
		if len(f) > 1 {
			return "(" + f.String() + ")"
		}
	case Any:
		if len(f) > 1 {
			return "(" + f.String() + ")"
		}
	}
	return f.String()
}
