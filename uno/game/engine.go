package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseAwaitingDecision
	PhaseResolving
	PhaseTurnComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseAwaitingDecision:
		return "awaiting decision"
	case PhaseResolving:
		return "resolving"
	case PhaseTurnComplete:
		return "turn complete"
	case PhaseGameOver:
		return "game over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type Config struct {
	Players []string
	// HandSize defaults to consts.HandSize.
	HandSize int
	// Rand defaults to a time seeded source.
	Rand *rand.Rand
	// Deck defaults to a shuffled standard deck drawn from Rand.
	Deck   *Deck
	Events *event.Bus
}

type seat struct {
	name string
	hand *Hand
}

// Outcome summarizes what a decision did to the table.
type Outcome struct {
	Player   int
	Decision Decision

	Played    card.Card
	HasPlayed bool
	Effect    action.Effect
	// Drawn holds the cards the acting player drew this turn.
	Drawn  []card.Card
	Passed bool

	Reversed     bool
	Penalized    int
	PenaltyCards []card.Card
	Skipped      int
	Uno          bool
	Winner       int

	Replenished bool
	Exhausted   bool
	Next        int
}

// Engine holds the table and resolves one decision at a time.
type Engine struct {
	seats    []*seat
	cycler   *Cycler
	deck     *Deck
	pile     *Pile
	events   *event.Bus
	handSize int
	phase    Phase
	winner   int
}

func New(config Config) (*Engine, error) {
	if len(config.Players) < consts.MinPlayers || len(config.Players) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", consts.ErrorsPlayersInvalid, len(config.Players))
	}
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	deck := config.Deck
	if deck == nil {
		deck = NewDeck(rng)
	}
	handSize := config.HandSize
	if handSize <= 0 {
		handSize = consts.HandSize
	}
	events := config.Events
	if events == nil {
		events = event.NewBus()
	}

	seats := make([]*seat, 0, len(config.Players))
	for _, name := range config.Players {
		seats = append(seats, &seat{name: name, hand: NewHand()})
	}
	return &Engine{
		seats:    seats,
		cycler:   NewCycler(len(seats)),
		deck:     deck,
		pile:     NewPile(),
		events:   events,
		handSize: handSize,
		phase:    PhaseSetup,
		winner:   -1,
	}, nil
}

// Setup deals the starting hands and turns up a number card to start the
// discard pile.
func (e *Engine) Setup() error {
	if e.phase != PhaseSetup {
		return fmt.Errorf("%w: game already set up", consts.ErrorsIllegalMove)
	}
	if e.deck.Size() < e.handSize*len(e.seats)+1 || !e.deck.containsKind(card.Number) {
		return fmt.Errorf("%w: deck of %d cards cannot start the game", consts.ErrorsNoCardsAvailable, e.deck.Size())
	}

	for round := 0; round < e.handSize; round++ {
		for _, s := range e.seats {
			dealt, err := e.deck.Draw()
			if err != nil {
				return err
			}
			s.hand.Add(dealt)
		}
	}
	for index, s := range e.seats {
		e.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerIndex: index,
			PlayerName:  s.name,
			Cards:       s.hand.Cards(),
		})
	}

	if !e.deck.containsKind(card.Number) {
		return fmt.Errorf("%w: no number card left to start the pile", consts.ErrorsNoCardsAvailable)
	}
	firstCard, err := e.deck.Draw()
	if err != nil {
		return err
	}
	for firstCard.Kind() != card.Number {
		e.deck.AddToPool(firstCard)
		e.deck.Shuffle()
		if firstCard, err = e.deck.Draw(); err != nil {
			return err
		}
	}
	e.pile.Add(firstCard)
	e.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	e.phase = PhaseAwaitingDecision
	return nil
}

// Apply validates decision for the current player and resolves it. A
// rejected decision leaves the table untouched.
func (e *Engine) Apply(decision Decision) (Outcome, error) {
	switch e.phase {
	case PhaseSetup:
		return Outcome{}, consts.ErrorsNotStarted
	case PhaseGameOver:
		return Outcome{}, consts.ErrorsGameOver
	}

	actor := e.cycler.Current()
	outcome := Outcome{
		Player:    actor,
		Decision:  decision,
		Penalized: -1,
		Skipped:   -1,
		Winner:    -1,
	}

	switch decision.Move {
	case MovePlay:
		if err := e.validatePlay(actor, decision); err != nil {
			return Outcome{}, err
		}
		e.play(actor, decision.Index, decision.Color, &outcome)
	case MoveDrawThenPass, MoveDrawThenPlay:
		e.phase = PhaseResolving
		drawn, ok := e.drawForTurn(actor, &outcome)
		if ok && decision.Move == MoveDrawThenPlay && e.playable(drawn, decision.Color) {
			e.play(actor, e.seats[actor].hand.Size()-1, decision.Color, &outcome)
		} else {
			e.pass(actor, &outcome)
		}
	default:
		return Outcome{}, fmt.Errorf("%w: unknown move %d", consts.ErrorsIllegalMove, decision.Move)
	}

	if e.phase != PhaseGameOver {
		e.phase = PhaseAwaitingDecision
	}
	outcome.Next = e.cycler.Current()
	return outcome, nil
}

func (e *Engine) validatePlay(actor int, decision Decision) error {
	candidate, ok := e.seats[actor].hand.Card(decision.Index)
	if !ok {
		return fmt.Errorf("%w: %s has no card #%d", consts.ErrorsIllegalMove, e.seats[actor].name, decision.Index+1)
	}
	top := e.Top()
	if !card.CanFollow(candidate, top) {
		return fmt.Errorf("%w: %s cannot follow %s", consts.ErrorsIllegalMove, candidate, top)
	}
	if candidate.IsWild() && !decision.Color.IsPlayable() {
		return fmt.Errorf("%w: %s needs a color", consts.ErrorsIllegalMove, candidate)
	}
	if !candidate.IsWild() && decision.Color != color.None {
		return fmt.Errorf("%w: %s cannot take a color", consts.ErrorsIllegalMove, candidate)
	}
	return nil
}

func (e *Engine) playable(drawn card.Card, chosen color.Color) bool {
	if !card.CanFollow(drawn, e.Top()) {
		return false
	}
	return !drawn.IsWild() || chosen.IsPlayable()
}

func (e *Engine) play(actor int, index int, chosen color.Color, outcome *Outcome) {
	e.phase = PhaseResolving
	s := e.seats[actor]
	played, _ := s.hand.Remove(index)
	e.pile.Add(played)
	e.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerIndex: actor,
		PlayerName:  s.name,
		Card:        played,
	})
	if played.IsWild() {
		coloredCard, _ := played.WithColor(chosen)
		e.pile.ReplaceTop(coloredCard)
		played = coloredCard
		e.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerIndex: actor,
			PlayerName:  s.name,
			Color:       chosen,
		})
	}
	outcome.Played = played
	outcome.HasPlayed = true

	if s.hand.HasWon() {
		e.phase = PhaseGameOver
		e.winner = actor
		outcome.Winner = actor
		e.events.WinnerFound.Emit(event.WinnerFoundPayload{
			PlayerIndex: actor,
			PlayerName:  s.name,
		})
		return
	}
	if s.hand.IsUno() {
		outcome.Uno = true
		e.events.UnoDeclared.Emit(event.UnoDeclaredPayload{
			PlayerIndex: actor,
			PlayerName:  s.name,
		})
	}

	effect := played.Effect()
	outcome.Effect = effect
	if effect.Reverse {
		e.cycler.Reverse()
		outcome.Reversed = true
		e.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
			PlayerIndex: actor,
			PlayerName:  s.name,
			Clockwise:   e.cycler.Direction() == Clockwise,
		})
	}
	if effect.Draw > 0 {
		victim := e.cycler.Peek()
		outcome.Penalized = victim
		outcome.PenaltyCards = e.forceDraw(victim, effect.Draw, outcome)
	}
	if effect.Skip {
		skipped := e.cycler.Next()
		outcome.Skipped = skipped
		e.events.TurnSkipped.Emit(event.TurnSkippedPayload{
			PlayerIndex: skipped,
			PlayerName:  e.seats[skipped].name,
		})
	}
	e.cycler.Next()
	e.phase = PhaseTurnComplete
}

func (e *Engine) pass(actor int, outcome *Outcome) {
	outcome.Passed = true
	e.events.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerIndex: actor,
		PlayerName:  e.seats[actor].name,
	})
	e.cycler.Next()
	e.phase = PhaseTurnComplete
}

// drawForTurn gives the acting player one card. It reports false when
// neither the deck nor the discard pile can produce one.
func (e *Engine) drawForTurn(actor int, outcome *Outcome) (card.Card, bool) {
	drawn, err := e.drawCard(outcome)
	if err != nil {
		outcome.Exhausted = true
		return card.Card{}, false
	}
	s := e.seats[actor]
	s.hand.Add(drawn)
	outcome.Drawn = append(outcome.Drawn, drawn)
	e.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerIndex: actor,
		PlayerName:  s.name,
		Cards:       []card.Card{drawn},
	})
	return drawn, true
}

// forceDraw awards up to amount cards to victim, one at a time, and stops
// quietly when no more cards can be produced.
func (e *Engine) forceDraw(victim int, amount int, outcome *Outcome) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		next, err := e.drawCard(outcome)
		if err != nil {
			outcome.Exhausted = true
			break
		}
		drawn = append(drawn, next)
	}
	s := e.seats[victim]
	s.hand.Add(drawn...)
	e.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerIndex: victim,
		PlayerName:  s.name,
		Cards:       drawn,
		Penalty:     true,
	})
	return drawn
}

func (e *Engine) drawCard(outcome *Outcome) (card.Card, error) {
	if e.deck.IsEmpty() && e.replenish() {
		outcome.Replenished = true
	}
	drawn, err := e.deck.Draw()
	if err != nil {
		return card.Card{}, fmt.Errorf("%w: deck and discard pile are exhausted", consts.ErrorsNoCardsAvailable)
	}
	return drawn, nil
}

// replenish moves every discard below the top back into the deck, with
// wild cards returned to their printed color, and shuffles.
func (e *Engine) replenish() bool {
	reclaimed := e.pile.TakeUnderTop()
	if len(reclaimed) == 0 {
		return false
	}
	for i := range reclaimed {
		reclaimed[i] = reclaimed[i].Uncolored()
	}
	e.deck.AddToPool(reclaimed...)
	e.deck.Shuffle()
	e.events.DeckReplenished.Emit(event.DeckReplenishedPayload{
		Reclaimed: len(reclaimed),
	})
	return true
}

func (e *Engine) Events() *event.Bus {
	return e.events
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Over() bool {
	return e.phase == PhaseGameOver
}

func (e *Engine) Winner() (int, bool) {
	return e.winner, e.phase == PhaseGameOver
}

func (e *Engine) Current() int {
	return e.cycler.Current()
}

// NextPlayerIndex is the seat that would play next with no card effect.
func (e *Engine) NextPlayerIndex() int {
	return e.cycler.Peek()
}

func (e *Engine) Direction() Direction {
	return e.cycler.Direction()
}

// Top returns the discard top, or the zero card before setup.
func (e *Engine) Top() card.Card {
	top, _ := e.pile.Top()
	return top
}

func (e *Engine) Players() int {
	return len(e.seats)
}

func (e *Engine) PlayerName(index int) string {
	return e.seats[index].name
}

func (e *Engine) Hand(index int) []card.Card {
	return e.seats[index].hand.Cards()
}

func (e *Engine) HandSize(index int) int {
	return e.seats[index].hand.Size()
}

// LegalMoves lists the current player's playable hand indexes.
func (e *Engine) LegalMoves() []int {
	if e.phase != PhaseAwaitingDecision {
		return []int{}
	}
	return e.seats[e.cycler.Current()].hand.LegalMoves(e.Top())
}

func (e *Engine) DeckSize() int {
	return e.deck.Size()
}

func (e *Engine) DeckCards() []card.Card {
	return e.deck.Cards()
}

func (e *Engine) PileCards() []card.Card {
	return e.pile.Cards()
}

// TotalCards counts every card on the table: deck, hands and discard pile.
func (e *Engine) TotalCards() int {
	total := e.deck.Size() + e.pile.Size()
	for _, s := range e.seats {
		total += s.hand.Size()
	}
	return total
}
