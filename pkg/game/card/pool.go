package card

import (
	"spireseed/pkg/game/character"
)

// Rarity is the rarity tier a reward card is drawn from.
type Rarity uint8

const (
	Common Rarity = iota + 1
	Uncommon
	Rare
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	}
	return "any"
}

// Pool holds a character's cards. All is in catalogue order; the rarity
// pools are in reverse catalogue order, which is the order the game
// draws from.
type Pool struct {
	All      []Card
	Common   []Card
	Uncommon []Card
	Rare     []Card
}

// ByRarity returns the pool for r.
func (p *Pool) ByRarity(r Rarity) []Card {
	switch r {
	case Common:
		return p.Common
	case Uncommon:
		return p.Uncommon
	case Rare:
		return p.Rare
	}
	panic("card: no pool for rarity " + r.String())
}

type layout struct {
	first                  Card
	common, uncommon, rare int
}

var layouts = [...]layout{
	character.Ironclad: {SwordBoomerang, 20, 36, 16},
	character.Silent:   {FlyingKnee, 19, 33, 19},
	character.Defect:   {SteamBarrier, 18, 36, 17},
	character.Watcher:  {EmptyFist, 19, 35, 17},
}

var pools = func() [len(layouts)]Pool {
	var p [len(layouts)]Pool
	for c, l := range layouts {
		first := int(l.first)
		p[c] = Pool{
			All:      span(first, l.common+l.uncommon+l.rare, false),
			Common:   span(first, l.common, true),
			Uncommon: span(first+l.common, l.uncommon, true),
			Rare:     span(first+l.common+l.uncommon, l.rare, true),
		}
	}
	return p
}()

// Colorless holds the colorless cards, which have no common tier.
var Colorless = Pool{
	All:      span(int(BandageUp), int(Violence-BandageUp)+1, false),
	Uncommon: span(int(BandageUp), int(Trip-BandageUp)+1, true),
	Rare:     span(int(Apotheosis), int(Violence-Apotheosis)+1, true),
}

func span(first, n int, reversed bool) []Card {
	cards := make([]Card, n)
	for i := range cards {
		if reversed {
			cards[i] = Card(first + n - 1 - i)
		} else {
			cards[i] = Card(first + i)
		}
	}
	return cards
}

// PoolFor returns the card pool of c.
func PoolFor(c character.Character) *Pool {
	return &pools[c]
}

// Of returns the character whose pool holds card, or false for colorless
// and invalid cards.
func Of(card Card) (character.Character, bool) {
	for c, l := range layouts {
		if card >= l.first && int(card) < int(l.first)+l.common+l.uncommon+l.rare {
			return character.Character(c), true
		}
	}
	return 0, false
}

// RarityOf returns the reward rarity of card, or false for basic and
// invalid cards.
func RarityOf(card Card) (Rarity, bool) {
	if c, ok := Of(card); ok {
		return PoolFor(c).rarity(card)
	}
	return Colorless.rarity(card)
}

func (p *Pool) rarity(card Card) (Rarity, bool) {
	for _, r := range [...]Rarity{Common, Uncommon, Rare} {
		for _, c := range p.ByRarity(r) {
			if c == card {
				return r, true
			}
		}
	}
	return 0, false
}
