package player

import (
	"github.com/ratel-online/uno/uno/game"
)

// Human forwards every decision to a Port.
type Human struct {
	name string
	port Port
}

func NewHuman(name string, port Port) *Human {
	return &Human{name: name, port: port}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) Port() Port {
	return h.port
}

func (h *Human) Decide(state game.State) (game.Decision, error) {
	h.port.RenderState(state)
	decision, err := h.port.RequestHumanDecision(state.LegalMoves, true)
	if err != nil {
		return game.Decision{}, err
	}
	if decision.Color.IsPlayable() || !h.needsColor(state, decision) {
		return decision, nil
	}
	if decision.Color, err = h.port.RequestColorChoice(); err != nil {
		return game.Decision{}, err
	}
	return decision, nil
}

// needsColor reports whether decision may play a wild card. The drawn card is
// unknown before the engine resolves the draw, so drawing to play always asks.
func (h *Human) needsColor(state game.State, decision game.Decision) bool {
	switch decision.Move {
	case game.MoveDrawThenPlay:
		return true
	case game.MovePlay:
		selected, ok := cardAt(state, decision.Index)
		return ok && selected.IsWild()
	}
	return false
}

// Rejected lets the port know why the last decision was refused.
type Rejected interface {
	NotifyRejected(err error)
}

func (h *Human) NotifyRejected(err error) {
	if rejected, ok := h.port.(Rejected); ok {
		rejected.NotifyRejected(err)
	}
}
