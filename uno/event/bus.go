package event

// Bus carries the events of a single game. Listeners run synchronously in
// registration order.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	UnoDeclared       *unoDeclaredEmitter
	DeckReplenished   *deckReplenishedEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		UnoDeclared:       &unoDeclaredEmitter{},
		DeckReplenished:   &deckReplenishedEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it
// implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(UnoDeclaredListener); ok {
		b.UnoDeclared.AddListener(l)
	}
	if l, ok := listener.(DeckReplenishedListener); ok {
		b.DeckReplenished.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		b.WinnerFound.AddListener(l)
	}
}
