package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Score rates how much an opponent wants to get rid of candidate while top
// is on the pile.
func Score(candidate card.Card, top card.Card) int {
	score := 0
	switch candidate.Kind() {
	case card.WildDrawFour:
		score = 5
	case card.DrawTwo:
		score = 4
	case card.Skip, card.Reverse:
		score = 3
	case card.WildColor:
		score = 2
	case card.Number:
		score = candidate.Number()
	}
	if candidate.Color() == top.Color() {
		score++
	}
	return score
}

// Choose returns the index of the best legal card in hand. Ties go to the
// earliest card. It reports false when no card can follow top.
func Choose(hand []card.Card, top card.Card) (int, bool) {
	bestIndex, bestScore := -1, -1
	for index, candidate := range hand {
		if !card.CanFollow(candidate, top) {
			continue
		}
		if score := Score(candidate, top); score > bestScore {
			bestIndex, bestScore = index, score
		}
	}
	return bestIndex, bestIndex >= 0
}

func RandomColor(rng *rand.Rand) color.Color {
	return color.Playable[rng.Intn(len(color.Playable))]
}
