package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/act"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/seed"
)

// DefaultFloor is the floor map filters check when none is given.
const DefaultFloor = 6

// mapOffset is act one's map seed offset, which always exists.
var mapOffset, _ = act.One.SeedOffset()

// generate builds the act one map of s and returns it with the generator
// positioned after the last map draw.
func generate(s seed.Seed, ascension bool) (*dungeon.Map, *rng.Random) {
	src := s.OffsetRNG(mapOffset)
	return dungeon.DefaultGenerator.Generate(src, ascension), src
}

func bottleneck(m *dungeon.Map, floor int) bool {
	row, err := act.FloorToRow(floor)
	return err == nil && m.IsBottleneck(row)
}

// Bottleneck accepts seeds whose act one map funnels every path through a
// single node on Floor.
type Bottleneck struct {
	Floor     int
	Ascension bool
}

func (b Bottleneck) Reject(s seed.Seed) bool {
	m, _ := generate(s, b.Ascension)
	return !bottleneck(m, b.Floor)
}

func (b Bottleneck) String() string {
	return fmt.Sprintf("bottleneck(%d)", b.Floor)
}

// BuffedEliteBottleneck is a Bottleneck whose map also has a burning
// elite. When Buffs is non-empty the elite's buff must be one of them.
type BuffedEliteBottleneck struct {
	Floor     int
	Ascension bool
	Buffs     mapset.Set[dungeon.EliteBuff]
}

func (b BuffedEliteBottleneck) Reject(s seed.Seed) bool {
	m, src := generate(s, b.Ascension)
	if !bottleneck(m, b.Floor) {
		return true
	}
	info, ok := m.BurningElite(src)
	if !ok {
		return true
	}
	return b.Buffs.Size() > 0 && !b.Buffs.Has(info.Buff)
}

func (b BuffedEliteBottleneck) String() string {
	args := []string{fmt.Sprint(b.Floor)}
	var buffs []string
	b.Buffs.Each(func(buff dungeon.EliteBuff) {
		buffs = append(buffs, buff.String())
	})
	sort.Strings(buffs)
	return "buffed_elite(" + strings.Join(append(args, buffs...), ", ") + ")"
}
