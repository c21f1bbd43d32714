package dungeon

import (
	"strings"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/locale"
	"spireseed/pkg/game/names"
)

// EliteBuff is the bonus granted to the burning elite.
type EliteBuff uint8

const (
	Strength EliteBuff = iota
	MaxHP
	Metallicize
	Regenerate
)

// Buffs lists every buff in draw order.
var Buffs = [...]EliteBuff{Strength, MaxHP, Metallicize, Regenerate}

var buffNames = [...]string{
	Strength:    "strength",
	MaxHP:       "max_hp",
	Metallicize: "metallicize",
	Regenerate:  "regenerate",
}

var buffs = func() *names.Lookup[EliteBuff] {
	l := names.NewLookup[EliteBuff]("elite buff")
	for _, b := range Buffs {
		l.Add(b, buffNames[b])
	}
	return l
}()

// ParseBuff resolves a buff by name.
func ParseBuff(s string) (EliteBuff, error) {
	return buffs.Find(s)
}

func (b EliteBuff) String() string {
	return buffNames[b]
}

// Name returns the localized display name.
func (b EliteBuff) Name() string {
	return locale.Get("BUFF_" + strings.ToUpper(b.String()))
}

func (b EliteBuff) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *EliteBuff) UnmarshalText(text []byte) error {
	v, err := ParseBuff(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Position is a node location, column first.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EliteInfo describes the burning elite: where it is, which of the Count
// elites it was (Index) and its buff.
type EliteInfo struct {
	Position `yaml:",inline"`
	Buff     EliteBuff `yaml:"buff"`
	Index    int       `yaml:"index"`
	Count    int       `yaml:"count"`
}

// Elites returns the elite rooms in row-major order, lowest floor first.
func (m *Map) Elites() []Position {
	var positions []Position
	for y := range m.kinds {
		for x, kind := range m.kinds[y] {
			if kind == Elite {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// BurningElitePosition draws which elite burns. It returns false, without
// drawing, when the map has no elite.
func (m *Map) BurningElitePosition(src rng.Source) (pos Position, index, count int, ok bool) {
	elites := m.Elites()
	if len(elites) == 0 {
		return Position{}, 0, 0, false
	}
	index = draw(src, len(elites))
	return elites[index], index, len(elites), true
}

// BurningEliteBuff draws the burning elite's buff.
func BurningEliteBuff(src rng.Source) EliteBuff {
	return Buffs[draw(src, len(Buffs))]
}

// BurningElite draws the burning elite's position and then its buff, in
// the order the game does.
func (m *Map) BurningElite(src rng.Source) (EliteInfo, bool) {
	pos, index, count, ok := m.BurningElitePosition(src)
	if !ok {
		return EliteInfo{}, false
	}
	return EliteInfo{
		Position: pos,
		Buff:     BurningEliteBuff(src),
		Index:    index,
		Count:    count,
	}, true
}
