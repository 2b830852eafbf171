package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Player is asked for a decision whenever it holds the turn. state is the
// table as seen from the player's own seat.
type Player interface {
	Name() string
	Decide(state game.State) (game.Decision, error)
}

// Port is the presentation and input side of a human seat.
type Port interface {
	RenderState(state game.State)
	// RequestHumanDecision blocks until the human picks a move. A wild card
	// may be returned without a color; the color is then asked separately.
	RequestHumanDecision(legal []int, canDraw bool) (game.Decision, error)
	RequestColorChoice() (color.Color, error)
}
