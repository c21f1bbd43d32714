package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"spireseed/pkg/game/card"
	"spireseed/pkg/game/character"
	"spireseed/pkg/game/events"
	"spireseed/pkg/game/seed"
)

// CardReward rejects seeds whose first Rewards card rewards offer any
// card in Rejected.
type CardReward struct {
	Character character.Character
	Rewards   int
	Rejected  mapset.Set[card.Card]
}

func (c CardReward) Reject(s seed.Seed) bool {
	if c.Rejected.Size() == 0 {
		return false
	}
	for _, reward := range card.NewRewarder(c.Character).Rewards(s.RNG(), c.Rewards) {
		for _, offered := range reward {
			if c.Rejected.Has(offered) {
				return true
			}
		}
	}
	return false
}

func (c CardReward) String() string {
	args := []string{strings.ToLower(c.Character.String()), fmt.Sprint(c.Rewards)}
	var cards []string
	c.Rejected.Each(func(rejected card.Card) {
		cards = append(cards, rejected.String())
	})
	sort.Strings(cards)
	return "avoid_cards(" + strings.Join(append(args, cards...), ", ") + ")"
}

// ConstantPandora accepts seeds on which Pandora's Box turns every basic
// card into the same card of Cards.
type ConstantPandora struct {
	Name  string
	Cards []card.Card
}

// PandoraFor returns a ConstantPandora over the card pool of c.
func PandoraFor(c character.Character) ConstantPandora {
	return ConstantPandora{
		Name:  strings.ToLower(c.String()),
		Cards: card.PoolFor(c).All,
	}
}

func (p ConstantPandora) Reject(s seed.Seed) bool {
	_, ok := card.ConstantPandora(s.RNG(), p.Cards)
	return !ok
}

func (p ConstantPandora) String() string {
	return "pandora(" + p.Name + ")"
}

// Juzuless accepts seeds on which a run entering Path unknown rooms meets
// no combat in them.
type Juzuless struct {
	Path [events.Segments]int
}

func (j Juzuless) Reject(s seed.Seed) bool {
	return !events.JuzulessPath(s.RNG(), j.Path)
}

func (j Juzuless) String() string {
	return fmt.Sprintf("juzu(%d, %d, %d)", j.Path[0], j.Path[1], j.Path[2])
}
