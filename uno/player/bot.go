package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Bot plays its best card when it can, otherwise draws and plays the drawn
// card if it fits. Wild colors are picked at random.
type Bot struct {
	name string
	rng  *rand.Rand
}

func NewBot(name string, rng *rand.Rand) *Bot {
	return &Bot{name: name, rng: rng}
}

func (b *Bot) Name() string {
	return b.name
}

func (b *Bot) Decide(state game.State) (game.Decision, error) {
	index, ok := Choose(state.ViewerHand, state.LastPlayedCard)
	if !ok {
		return game.DrawThenPlay(RandomColor(b.rng)), nil
	}
	chosen := color.None
	if state.ViewerHand[index].IsWild() {
		chosen = RandomColor(b.rng)
	}
	return game.Play(index, chosen), nil
}

// FirstLegal is the decision taken for a player that did not answer in time:
// the first playable card, or a draw.
func FirstLegal(state game.State, fallback color.Color) game.Decision {
	if len(state.LegalMoves) == 0 {
		return game.DrawThenPlay(fallback)
	}
	index := state.LegalMoves[0]
	if state.ViewerHand[index].IsWild() {
		return game.Play(index, fallback)
	}
	return game.Play(index, color.None)
}
