package card

import "spireseed/pkg/engine/rng"

// PandoraDraws is the number of cards Pandora's Box transforms.
const PandoraDraws = 9

// Pandora draws the cards Pandora's Box turns the starting Strikes and
// Defends into, uniformly from cards.
func Pandora(src rng.Source, cards []Card) [PandoraDraws]Card {
	var out [PandoraDraws]Card
	n := uint64(len(cards))
	for i := range out {
		out[i] = cards[src.NextBounded(n)]
	}
	return out
}

// ConstantPandora reports the card when all of Pandora's draws are equal.
func ConstantPandora(src rng.Source, cards []Card) (Card, bool) {
	drawn := Pandora(src, cards)
	for _, c := range drawn[1:] {
		if c != drawn[0] {
			return Invalid, false
		}
	}
	return drawn[0], true
}
