package dungeon

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"spireseed/pkg/engine/rng"
)

// Room chances, applied to the first-wave node count.
const (
	shopChance  float32 = 0.05
	restChance  float32 = 0.12
	eliteChance float32 = 0.08
	eventChance float32 = 0.22

	ascensionEliteFactor float32 = 1.6
)

func (m *Map) assignRooms(src rng.Source, ascension bool) {
	rooms := roomBag(m.firstCount(), ascension)
	for recount := m.adjustedRecount(); len(rooms) < recount; {
		rooms = append(rooms, Monster)
	}
	shuffle(rooms, src)

	for row := 0; row < Height; row++ {
		if row == 0 || row == TreasureRow || row == RestRow {
			continue
		}
		for position := 0; position < Width; position++ {
			if m.skeleton.rows[row][position].Out.IsEmpty() {
				continue
			}
			m.kinds[row][position], rooms = m.nextKind(rooms, row, position)
		}
	}

	m.setRow(0, Monster)
	m.setRow(TreasureRow, Treasure)
	m.setRow(RestRow, Rest)
	m.fillUnassigned()
}

// firstCount estimates the nodes that need a drawn kind.
func (m *Map) firstCount() int {
	s := m.skeleton
	return s.CountIn() + s.rows[RestRow].CountIn() - s.rows[BeforeRestRow].CountOut()
}

func (m *Map) adjustedRecount() int {
	s := m.skeleton
	preassigned := s.rows[RestRow].CountIn() + s.rows[TreasureRow].CountOut() + s.rows[0].CountOut()
	return s.CountOut() - preassigned + s.rows[RestRow].CountIn()
}

func roomBag(count int, ascension bool) []Kind {
	elite := eliteChance
	if ascension {
		elite *= ascensionEliteFactor
	}
	chances := [...]struct {
		kind   Kind
		chance float32
	}{
		{Shop, shopChance},
		{Rest, restChance},
		{Elite, elite},
		{Event, eventChance},
	}
	rooms := make([]Kind, 0, count)
	for _, c := range chances {
		n := int(math.Round(float64(c.chance * float32(count))))
		for i := 0; i < n; i++ {
			rooms = append(rooms, c.kind)
		}
	}
	return rooms
}

// shuffle stops at i == 2, so slot 0 only moves when drawn as a swap target.
func shuffle(rooms []Kind, src rng.Source) {
	for i := len(rooms); i >= 2; i-- {
		j := draw(src, i)
		rooms[i-1], rooms[j] = rooms[j], rooms[i-1]
	}
}

// nextKind removes and returns the first room in the bag allowed at the
// node, or Unassigned when none fits.
func (m *Map) nextKind(rooms []Kind, row, position int) (Kind, []Kind) {
	parents := m.parentKinds(row, position)
	siblings := m.siblingKinds(row, position)
	for i, kind := range rooms {
		if kind.IncompatibleWith(row) {
			continue
		}
		switch kind {
		case Rest, Shop, Elite:
			if parents.Has(kind) || siblings.Has(kind) {
				continue
			}
		case Monster, Event:
			if siblings.Has(kind) {
				continue
			}
		}
		return kind, append(rooms[:i], rooms[i+1:]...)
	}
	return Unassigned, rooms
}

func (m *Map) parentKinds(row, position int) mapset.Set[Kind] {
	set := mapset.New[Kind]()
	for _, e := range m.skeleton.rows[row][position].In.Entries() {
		if k := m.kinds[row-1][e.Value]; k.IsAssigned() && k != Empty {
			set.Put(k)
		}
	}
	return set
}

func (m *Map) siblingKinds(row, position int) mapset.Set[Kind] {
	set := mapset.New[Kind]()
	for _, e := range m.skeleton.rows[row][position].In.Entries() {
		for _, sibling := range m.skeleton.rows[row-1][e.Value].Out.Values() {
			if sibling == position {
				continue
			}
			if k := m.kinds[row][sibling]; k.IsAssigned() {
				set.Put(k)
			}
		}
	}
	return set
}

func (m *Map) setRow(row int, kind Kind) {
	for position := range m.kinds[row] {
		m.kinds[row][position] = kind
	}
}

// fillUnassigned turns every reachable node that drew no kind into a
// monster room.
func (m *Map) fillUnassigned() {
	for row := range m.kinds {
		for position, kind := range m.kinds[row] {
			if kind.IsAssigned() || m.skeleton.rows[row][position].In.IsEmpty() {
				continue
			}
			m.kinds[row][position] = Monster
		}
	}
}
