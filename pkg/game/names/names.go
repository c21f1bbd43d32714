// Package names resolves user-typed identifiers (characters, cards,
// modifiers, filters) and suggests the closest known spelling on a miss.
package names

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"
)

// ErrUnknown is wrapped by every failed lookup.
var ErrUnknown = errors.New("unknown name")

// Normalise lowercases s and drops spaces, underscores and dashes, so
// "Dodge and Roll", "dodge_and_roll" and "DodgeAndRoll" compare equal.
func Normalise(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Suggest returns the candidate closest to input within an edit distance
// that grows with the candidate's length, or "" when none is close.
func Suggest(input string, candidates []string) string {
	token := Normalise(input)
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, cand := range candidates {
		norm := Normalise(cand)
		if norm == token {
			return cand
		}
		dist := levenshtein.ComputeDistance(token, norm)
		if strings.HasPrefix(norm, token) && len(token) >= 3 {
			dist = 1
		}
		if dist > limit(len(norm)) {
			continue
		}
		hits = append(hits, scored{cand, dist})
	}
	if len(hits) == 0 {
		return ""
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})
	return hits[0].name
}

// Unknown builds the error returned for an unrecognised name of the given
// kind, with a suggestion when one is close enough.
func Unknown(kind, input string, candidates []string) error {
	if s := Suggest(input, candidates); s != "" {
		return errors.Wrapf(ErrUnknown, "%s %q (did you mean %q?)", kind, input, s)
	}
	return errors.Wrapf(ErrUnknown, "%s %q", kind, input)
}

// Lookup is a normalised name table.
type Lookup[T any] struct {
	kind    string
	values  map[string]T
	display []string
}

// NewLookup creates an empty table for names of the given kind.
func NewLookup[T any](kind string) *Lookup[T] {
	return &Lookup[T]{kind: kind, values: make(map[string]T)}
}

// Add registers value under name and any aliases. The name is the one
// shown in suggestions.
func (l *Lookup[T]) Add(value T, name string, aliases ...string) {
	l.display = append(l.display, name)
	l.values[Normalise(name)] = value
	for _, a := range aliases {
		l.values[Normalise(a)] = value
	}
}

// Find resolves input, or returns an ErrUnknown error with a suggestion.
func (l *Lookup[T]) Find(input string) (T, error) {
	if v, ok := l.values[Normalise(input)]; ok {
		return v, nil
	}
	var zero T
	return zero, Unknown(l.kind, input, l.display)
}

// Names returns the display names in registration order.
func (l *Lookup[T]) Names() []string {
	return append([]string(nil), l.display...)
}
