package card

import (
	"strings"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/character"
)

// RewardSize is the number of cards offered after a combat.
const RewardSize = 3

const (
	defaultOffset  = -5
	rareCutoff     = 3
	uncommonCutoff = 37
)

// Reward is one card choice.
type Reward [RewardSize]Card

// Contains reports whether c is offered.
func (r Reward) Contains(c Card) bool {
	for _, card := range r {
		if card == c {
			return true
		}
	}
	return false
}

func (r Reward) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// offset is the rare-card pity counter. It grows with every common card
// and resets when a rare is drawn.
type offset int64

func (o *offset) rarity(src rng.Source) Rarity {
	roll := int64(src.NextBounded(100)) + int64(*o)
	switch {
	case roll < rareCutoff:
		*o = defaultOffset
		return Rare
	case roll <= uncommonCutoff:
		return Uncommon
	default:
		*o--
		return Common
	}
}

// Rewarder draws the card rewards of the first combats of a run, assuming
// every card is unlocked.
type Rewarder struct {
	pool *Pool
}

// NewRewarder returns a rewarder for c.
func NewRewarder(c character.Character) *Rewarder {
	return &Rewarder{pool: PoolFor(c)}
}

// Rewards draws n consecutive rewards from src, which must be seeded with
// the run seed.
func (r *Rewarder) Rewards(src rng.Source, n int) []Reward {
	rewards := make([]Reward, n)
	o := offset(defaultOffset)
	for i := range rewards {
		rewards[i] = r.reward(src, &o)
	}
	return rewards
}

func (r *Rewarder) reward(src rng.Source, o *offset) Reward {
	var reward Reward
	for i := range reward {
		rarity := o.rarity(src)
		c := r.card(src, rarity)
		for reward.Contains(c) {
			c = r.card(src, rarity)
		}
		reward[i] = c
	}
	// upgrade rolls
	src.Advance(RewardSize)
	return reward
}

func (r *Rewarder) card(src rng.Source, rarity Rarity) Card {
	cards := r.pool.ByRarity(rarity)
	return cards[src.NextBounded(uint64(len(cards)))]
}
