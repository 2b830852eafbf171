package action

// Effect is the consequence of placing a card on the discard pile.
type Effect struct {
	// Skip passes over the next player's turn.
	Skip bool
	// Reverse flips the turn order before the turn advances.
	Reverse bool
	// Draw is the number of cards forced on the next player.
	Draw int
	// PickColor requires a color to be fixed for the played card.
	PickColor bool
}

func NewSkipTurnEffect() Effect {
	return Effect{Skip: true}
}

func NewReverseTurnsEffect() Effect {
	return Effect{Reverse: true}
}

func NewDrawCardsEffect(amount int) Effect {
	return Effect{Skip: true, Draw: amount}
}

func NewPickColorEffect() Effect {
	return Effect{PickColor: true}
}

// Combine merges two effects, summing their forced draws.
func (e Effect) Combine(other Effect) Effect {
	return Effect{
		Skip:      e.Skip || other.Skip,
		Reverse:   e.Reverse || other.Reverse,
		Draw:      e.Draw + other.Draw,
		PickColor: e.PickColor || other.PickColor,
	}
}

// Advances is how many times the turn pointer moves once the effect resolves.
func (e Effect) Advances() int {
	if e.Skip {
		return 2
	}
	return 1
}
