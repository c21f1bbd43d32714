package card

import (
	"testing"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/character"
	"spireseed/pkg/game/seed"
)

func TestCatalog_Layout(t *testing.T) {
	if Count != 321 {
		t.Errorf("Count = %d, want 321", Count)
	}
	starts := map[character.Character]Card{
		character.Ironclad: 1,
		character.Silent:   73,
		character.Defect:   144,
		character.Watcher:  215,
	}
	for c, want := range starts {
		if got := PoolFor(c).All[0]; got != want {
			t.Errorf("%s starts at %d (%s), want %d", c, got, got, want)
		}
	}
	if BandageUp != 286 || Violence != 320 {
		t.Errorf("colorless spans %d..%d", BandageUp, Violence)
	}
}

func TestPools_SizesAndOrder(t *testing.T) {
	cases := []struct {
		c                      character.Character
		common, uncommon, rare int
		firstCommon, lastRare  Card
	}{
		{character.Ironclad, 20, 36, 16, Anger, DoubleTap},
		{character.Silent, 19, 33, 19, CloakAndDagger, Alchemize},
		{character.Defect, 18, 36, 17, GoForTheEyes, MultiCast},
		{character.Watcher, 19, 35, 17, Consecrate, Judgment},
	}
	for _, tc := range cases {
		p := PoolFor(tc.c)
		if len(p.Common) != tc.common || len(p.Uncommon) != tc.uncommon || len(p.Rare) != tc.rare {
			t.Errorf("%s: sizes %d/%d/%d", tc.c, len(p.Common), len(p.Uncommon), len(p.Rare))
		}
		if len(p.All) != tc.common+tc.uncommon+tc.rare {
			t.Errorf("%s: All has %d cards", tc.c, len(p.All))
		}
		if p.Common[0] != tc.firstCommon {
			t.Errorf("%s: common pool starts with %s, want %s", tc.c, p.Common[0], tc.firstCommon)
		}
		if p.Rare[len(p.Rare)-1] != tc.lastRare {
			t.Errorf("%s: rare pool ends with %s, want %s", tc.c, p.Rare[len(p.Rare)-1], tc.lastRare)
		}
		for _, card := range p.All {
			if owner, ok := Of(card); !ok || owner != tc.c {
				t.Errorf("Of(%s) = %s, %v", card, owner, ok)
			}
		}
	}
	if _, ok := Of(Apotheosis); ok {
		t.Error("Of(Apotheosis) reported a character")
	}
	if len(Colorless.Uncommon) != 20 || len(Colorless.Rare) != 15 {
		t.Errorf("colorless sizes %d/%d", len(Colorless.Uncommon), len(Colorless.Rare))
	}
}

func TestRewards_ReferenceSeed(t *testing.T) {
	s := seed.MustParse("18ISL35FYK4")
	got := NewRewarder(character.Silent).Rewards(s.RNG(), 3)
	want := []Reward{
		{Prepared, DodgeAndRoll, EscapePlan},
		{EscapePlan, Outmaneuver, Prepared},
		{Prepared, DodgeAndRoll, Footwork},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reward %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRewards_NoDuplicatesWithinReward(t *testing.T) {
	for _, c := range character.All {
		r := NewRewarder(c)
		for v := uint64(0); v < 200; v++ {
			for _, reward := range r.Rewards(rng.New(v), 5) {
				if reward[0] == reward[1] || reward[0] == reward[2] || reward[1] == reward[2] {
					t.Fatalf("%s seed %d: duplicate in %s", c, v, reward)
				}
				for _, card := range reward {
					if owner, ok := Of(card); !ok || owner != c {
						t.Fatalf("%s seed %d: foreign card %s", c, v, card)
					}
				}
			}
		}
	}
}

func TestRewards_AdvancesForUpgrades(t *testing.T) {
	r := rng.New(42)
	NewRewarder(character.Ironclad).Rewards(r, 1)
	// three rarity rolls, at least three card draws, three upgrade rolls
	if r.Position() < 9 {
		t.Errorf("position = %d after one reward", r.Position())
	}
}

func TestPandora(t *testing.T) {
	got := Pandora(rng.New(1), allCards())
	want := [PandoraDraws]Card{
		ThunderStrike, CloakAndDagger, MachineLearning, Dash, TalkToTheHand,
		Impatience, Scrape, CoreSurge, Storm,
	}
	if got != want {
		t.Errorf("Pandora(seed 1) = %v, want %v", got, want)
	}
	if c, ok := ConstantPandora(rng.New(5), []Card{Prepared}); !ok || c != Prepared {
		t.Errorf("single-card box = %s, %v", c, ok)
	}
	if _, ok := ConstantPandora(rng.New(1), allCards()); ok {
		t.Error("seed 1 reported a constant box")
	}
}

func allCards() []Card {
	cards := make([]Card, Count)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

func TestParse(t *testing.T) {
	cases := map[string]Card{
		"DodgeAndRoll":    DodgeAndRoll,
		"dodge and roll":  DodgeAndRoll,
		"A_THOUSAND_CUTS": AThousandCuts,
		"ftl":             Ftl,
	}
	for in, want := range cases {
		if got, err := Parse(in); err != nil || got != want {
			t.Errorf("Parse(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := Parse("Invalid"); err == nil {
		t.Error("Parse(Invalid) succeeded")
	}
	if _, err := ParseList([]string{"Prepared", "Nope"}); err == nil {
		t.Error("ParseList accepted an unknown card")
	}
}

func TestRarityOf(t *testing.T) {
	cases := []struct {
		card Card
		want Rarity
		ok   bool
	}{
		{Prepared, Common, true},
		{Footwork, Uncommon, true},
		{Alchemize, Rare, true},
		{Apotheosis, Rare, true},
		{Invalid, 0, false},
	}
	for _, c := range cases {
		got, ok := RarityOf(c.card)
		if got != c.want || ok != c.ok {
			t.Errorf("RarityOf(%s) = %s, %v; want %s, %v", c.card, got, ok, c.want, c.ok)
		}
	}
}
