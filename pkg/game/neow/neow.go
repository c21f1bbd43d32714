// Package neow draws the four options Neow offers at the start of a run.
package neow

import (
	"fmt"

	"spireseed/pkg/engine/rng"
)

type FirstBonus uint8

const (
	ThreeCards FirstBonus = iota
	OneRandomRareCard
	RemoveCard
	UpgradeCard
	TransformCard
	RandomColorless
)

var firstBonuses = [...]string{
	ThreeCards:        "Choose one of three cards",
	OneRandomRareCard: "Obtain a random rare card",
	RemoveCard:        "Remove a card",
	UpgradeCard:       "Upgrade a card",
	TransformCard:     "Transform a card",
	RandomColorless:   "Choose a colorless card",
}

func (b FirstBonus) String() string { return firstBonuses[b] }

type SecondBonus uint8

const (
	ThreeSmallPotions SecondBonus = iota
	RandomCommonRelic
	TenPercentHpBonus
	ThreeEnemyKill
	HundredGold
)

var secondBonuses = [...]string{
	ThreeSmallPotions: "Obtain 3 random potions",
	RandomCommonRelic: "Obtain a random common relic",
	TenPercentHpBonus: "Max HP +10%",
	ThreeEnemyKill:    "Enemies in the next three combats have 1 HP",
	HundredGold:       "Obtain 100 gold",
}

func (b SecondBonus) String() string { return secondBonuses[b] }

type Drawback uint8

const (
	TenPercentHpLoss Drawback = iota
	NoGold
	Curse
	PercentDamage
)

var drawbacks = [...]string{
	TenPercentHpLoss: "Lose 10% Max HP",
	NoGold:           "Lose all gold",
	Curse:            "Obtain a curse",
	PercentDamage:    "Take 30% damage",
}

func (d Drawback) String() string { return drawbacks[d] }

type ThirdBonus uint8

const (
	RandomColorlessChoice ThirdBonus = iota
	RemoveTwo
	OneRareRelic
	ThreeRareCards
	TwoFiftyGold
	TransformTwoCards
	TwentyPercentHpBonus
)

var thirdBonuses = [...]string{
	RandomColorlessChoice: "Choose a rare colorless card",
	RemoveTwo:             "Remove 2 cards",
	OneRareRelic:          "Obtain a random rare relic",
	ThreeRareCards:        "Choose one of three rare cards",
	TwoFiftyGold:          "Obtain 250 gold",
	TransformTwoCards:     "Transform 2 cards",
	TwentyPercentHpBonus:  "Max HP +20%",
}

func (b ThirdBonus) String() string { return thirdBonuses[b] }

// thirdTables lists the bonuses a drawback can be paired with. A drawback
// never comes with the bonus it would cancel.
var thirdTables = [...][]ThirdBonus{
	TenPercentHpLoss: {RandomColorlessChoice, RemoveTwo, OneRareRelic, ThreeRareCards, TwoFiftyGold, TransformTwoCards},
	NoGold:           {RandomColorlessChoice, RemoveTwo, OneRareRelic, ThreeRareCards, TransformTwoCards, TwentyPercentHpBonus},
	Curse:            {RandomColorlessChoice, OneRareRelic, ThreeRareCards, TwoFiftyGold, TransformTwoCards, TwentyPercentHpBonus},
	PercentDamage:    {RandomColorlessChoice, RemoveTwo, OneRareRelic, ThreeRareCards, TwoFiftyGold, TransformTwoCards, TwentyPercentHpBonus},
}

// Bonuses are the options of one run.
type Bonuses struct {
	First    FirstBonus
	Second   SecondBonus
	Drawback Drawback
	Third    ThirdBonus
}

// Generate draws the options from src, which must be seeded with the run
// seed.
func Generate(src rng.Source) Bonuses {
	var b Bonuses
	b.First = FirstBonus(src.NextBounded(uint64(len(firstBonuses))))
	b.Second = SecondBonus(src.NextBounded(uint64(len(secondBonuses))))
	b.Drawback = Drawback(src.NextBounded(uint64(len(drawbacks))))
	table := thirdTables[b.Drawback]
	b.Third = table[src.NextBounded(uint64(len(table)))]
	return b
}

// Options returns the four options as Neow presents them.
func (b Bonuses) Options() [4]string {
	return [4]string{
		b.First.String(),
		b.Second.String(),
		fmt.Sprintf("%s, %s", b.Drawback, b.Third),
		"Lose your starting relic, obtain a random boss relic",
	}
}
