package dungeon

import (
	"strconv"
	"strings"

	"spireseed/pkg/game/locale"
	"spireseed/pkg/game/names"
)

// Kind is the room type placed on a map node.
type Kind uint8

const (
	Unassigned Kind = iota
	Monster
	Elite
	Event
	Rest
	Shop
	Treasure
	Empty
)

var kindNames = [...]string{
	Unassigned: "unassigned",
	Monster:    "monster",
	Elite:      "elite",
	Event:      "event",
	Rest:       "rest",
	Shop:       "shop",
	Treasure:   "treasure",
	Empty:      "empty",
}

var kinds = func() *names.Lookup[Kind] {
	l := names.NewLookup[Kind]("room kind")
	for k, name := range kindNames {
		l.Add(Kind(k), name)
	}
	return l
}()

// ParseKind resolves a room kind by name.
func ParseKind(s string) (Kind, error) {
	return kinds.Find(s)
}

// Glyph is the single character used for the kind in text maps.
func (k Kind) Glyph() rune {
	switch k {
	case Unassigned:
		return '*'
	case Monster:
		return 'M'
	case Elite:
		return 'E'
	case Event:
		return '?'
	case Rest:
		return 'R'
	case Shop:
		return '$'
	case Treasure:
		return 'T'
	case Empty:
		return ' '
	}
	panic("dungeon: unknown kind")
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Key returns the catalogue key of the kind's display name.
func (k Kind) Key() string {
	return "ROOM_" + strings.ToUpper(k.String())
}

// Name returns the localized display name.
func (k Kind) Name() string {
	return locale.Get(k.Key())
}

// IsAssigned reports whether room assignment has given the node a kind.
func (k Kind) IsAssigned() bool {
	return k != Unassigned
}

// IncompatibleWith reports whether the kind may never be drawn for row.
// Elites and rest sites are kept off the first five floors, and rest sites
// off the two floors before the boss.
func (k Kind) IncompatibleWith(row int) bool {
	switch {
	case row <= 4:
		return k == Elite || k == Rest
	case row >= BeforeRestRow:
		return k == Rest
	}
	return false
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
