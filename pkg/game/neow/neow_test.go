package neow

import (
	"testing"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/seed"
)

func TestGenerate_KnownSeeds(t *testing.T) {
	cases := []struct {
		seed string
		want Bonuses
	}{
		{"E06ALSGPMJ59", Bonuses{TransformCard, RandomCommonRelic, NoGold, TwentyPercentHpBonus}},
		{"4MKRHI0VBSRTJ", Bonuses{OneRandomRareCard, TenPercentHpBonus, TenPercentHpLoss, ThreeRareCards}},
		{"CY", Bonuses{OneRandomRareCard, TenPercentHpBonus, Curse, TransformTwoCards}},
	}
	for _, c := range cases {
		if got := Generate(seed.MustParse(c.seed).RNG()); got != c.want {
			t.Errorf("%s: Generate() = %+v, want %+v", c.seed, got, c.want)
		}
	}
}

func TestGenerate_ThirdBonusMatchesDrawback(t *testing.T) {
	for v := uint64(0); v < 2000; v++ {
		b := Generate(rng.New(v))
		switch {
		case b.Drawback == TenPercentHpLoss && b.Third == TwentyPercentHpBonus,
			b.Drawback == NoGold && b.Third == TwoFiftyGold,
			b.Drawback == Curse && b.Third == RemoveTwo:
			t.Fatalf("seed %d: %s paired with %s", v, b.Drawback, b.Third)
		}
	}
}

func TestOptions(t *testing.T) {
	b := Bonuses{ThreeCards, HundredGold, Curse, OneRareRelic}
	opts := b.Options()
	if opts[0] != "Choose one of three cards" || opts[2] != "Obtain a curse, Obtain a random rare relic" {
		t.Errorf("Options() = %q", opts)
	}
}
