package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var playerNames = []string{"Annie", "Braum", "Caitlyn", "Draven", "Ezreal"}

func num(c color.Color, number int) card.Card {
	return card.NewNumberCard(c, number)
}

// newTable builds a started engine whose players receive exactly hands, with
// start as the first discard and rest left in the deck.
func newTable(t *testing.T, hands [][]card.Card, start card.Card, rest ...card.Card) (*game.Engine, *event.DummyListener) {
	t.Helper()
	handSize := len(hands[0])
	order := make([]card.Card, 0, handSize*len(hands)+1+len(rest))
	for round := 0; round < handSize; round++ {
		for _, hand := range hands {
			require.Len(t, hand, handSize)
			order = append(order, hand[round])
		}
	}
	order = append(order, start)
	order = append(order, rest...)

	listener := event.NewDummyListener()
	bus := event.NewBus()
	bus.Subscribe(listener)

	engine, err := game.New(game.Config{
		Players:  playerNames[:len(hands)],
		HandSize: handSize,
		Rand:     seeded(1),
		Deck:     game.NewDeckOf(seeded(1), order...),
		Events:   bus,
	})
	require.NoError(t, err)
	require.NoError(t, engine.Setup())
	return engine, listener
}

func fourPlayers(first []card.Card) [][]card.Card {
	return [][]card.Card{
		first,
		{num(color.Green, 1), num(color.Green, 2)},
		{num(color.Yellow, 1), num(color.Yellow, 2)},
		{num(color.Blue, 3), num(color.Blue, 4)},
	}
}

func TestNew(t *testing.T) {
	_, err := game.New(game.Config{Players: []string{"Solo"}})
	require.True(t, errors.Is(err, consts.ErrorsPlayersInvalid))

	engine, err := game.New(game.Config{Players: playerNames[:4], Rand: seeded(1)})
	require.NoError(t, err)
	require.Equal(t, game.PhaseSetup, engine.Phase())
	require.Equal(t, 108, engine.DeckSize())
}

func TestSetup(t *testing.T) {
	t.Run("deals_seven_cards_to_four_players", func(t *testing.T) {
		engine, err := game.New(game.Config{Players: playerNames[:4], Rand: seeded(2024)})
		require.NoError(t, err)
		require.NoError(t, engine.Setup())

		dealt := 0
		for player := 0; player < engine.Players(); player++ {
			require.Equal(t, 7, engine.HandSize(player))
			dealt += engine.HandSize(player)
		}
		assert.Equal(t, 28, dealt)
		assert.Equal(t, 79, engine.DeckSize())
		assert.Len(t, engine.PileCards(), 1)
		assert.Equal(t, card.Number, engine.Top().Kind())
		assert.Equal(t, 108, engine.TotalCards())
		assert.Equal(t, 0, engine.Current())
		assert.Equal(t, game.Clockwise, engine.Direction())
		assert.Equal(t, game.PhaseAwaitingDecision, engine.Phase())
	})

	t.Run("deals_round_robin", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers([]card.Card{num(color.Red, 1), num(color.Red, 2)}), num(color.Red, 5))
		require.Equal(t, []card.Card{num(color.Red, 1), num(color.Red, 2)}, engine.Hand(0))
		require.Equal(t, []card.Card{num(color.Blue, 3), num(color.Blue, 4)}, engine.Hand(3))
	})

	t.Run("redraws_until_a_number_card_starts_the_pile", func(t *testing.T) {
		hands := fourPlayers([]card.Card{num(color.Red, 1), num(color.Red, 2)})
		engine, listener := newTable(t, hands, card.NewSkipCard(color.Red), num(color.Green, 3))

		require.Equal(t, num(color.Green, 3), engine.Top())
		require.Equal(t, []card.Card{card.NewSkipCard(color.Red)}, engine.DeckCards())
		require.Contains(t, listener.ReceivedPayloads(), event.FirstCardPlayedPayload{Card: num(color.Green, 3)})
	})

	t.Run("fails_without_enough_cards", func(t *testing.T) {
		engine, err := game.New(game.Config{
			Players: playerNames[:2],
			Deck:    game.NewDeckOf(seeded(1), num(color.Red, 1), num(color.Red, 2)),
		})
		require.NoError(t, err)
		require.True(t, errors.Is(engine.Setup(), consts.ErrorsNoCardsAvailable))
	})

	t.Run("fails_without_a_number_card", func(t *testing.T) {
		engine, err := game.New(game.Config{
			Players:  playerNames[:2],
			HandSize: 1,
			Deck:     game.NewDeckOf(seeded(1), card.NewSkipCard(color.Red), card.NewWildCard(), card.NewReverseCard(color.Blue)),
		})
		require.NoError(t, err)
		require.True(t, errors.Is(engine.Setup(), consts.ErrorsNoCardsAvailable))
	})

	t.Run("fails_when_every_number_card_is_dealt", func(t *testing.T) {
		engine, err := game.New(game.Config{
			Players:  playerNames[:2],
			HandSize: 2,
			Deck: game.NewDeckOf(seeded(1),
				num(color.Red, 1), num(color.Red, 2), num(color.Red, 3), num(color.Red, 4),
				card.NewSkipCard(color.Red), card.NewSkipCard(color.Blue)),
		})
		require.NoError(t, err)
		require.True(t, errors.Is(engine.Setup(), consts.ErrorsNoCardsAvailable))
		require.Equal(t, game.PhaseSetup, engine.Phase())
	})

	t.Run("runs_once", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers([]card.Card{num(color.Red, 1), num(color.Red, 2)}), num(color.Red, 5))
		require.True(t, errors.Is(engine.Setup(), consts.ErrorsIllegalMove))
	})
}

func TestApplyBeforeSetup(t *testing.T) {
	engine, err := game.New(game.Config{Players: playerNames[:4], Rand: seeded(1)})
	require.NoError(t, err)
	_, err = engine.Apply(game.DrawThenPass())
	require.True(t, errors.Is(err, consts.ErrorsNotStarted))
}

func TestPlay(t *testing.T) {
	t.Run("number_card_advances_once", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers([]card.Card{num(color.Red, 1), num(color.Blue, 1)}), num(color.Red, 5))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.Equal(t, num(color.Red, 1), engine.Top())
		assert.Equal(t, []card.Card{num(color.Blue, 1)}, engine.Hand(0))
		assert.Equal(t, 1, engine.Current())
		assert.Equal(t, 1, outcome.Next)
		assert.True(t, outcome.HasPlayed)
		assert.Equal(t, -1, outcome.Skipped)
		assert.Equal(t, -1, outcome.Winner)
	})

	t.Run("reverse_from_player_zero_passes_to_player_three", func(t *testing.T) {
		engine, listener := newTable(t, fourPlayers([]card.Card{card.NewReverseCard(color.Red), num(color.Blue, 1)}), num(color.Red, 5))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.Equal(t, game.CounterClockwise, engine.Direction())
		assert.Equal(t, 3, engine.Current())
		assert.True(t, outcome.Reversed)
		assert.Contains(t, listener.ReceivedPayloads(), event.TurnOrderReversedPayload{PlayerIndex: 0, PlayerName: "Annie", Clockwise: false})
	})

	t.Run("skip_passes_over_the_next_player", func(t *testing.T) {
		engine, listener := newTable(t, fourPlayers([]card.Card{card.NewSkipCard(color.Red), num(color.Blue, 1)}), num(color.Red, 5))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.Equal(t, 2, engine.Current())
		assert.Equal(t, 1, outcome.Skipped)
		assert.Contains(t, listener.ReceivedPayloads(), event.TurnSkippedPayload{PlayerIndex: 1, PlayerName: "Braum"})
	})

	t.Run("skip_follows_a_reversed_direction", func(t *testing.T) {
		hands := fourPlayers([]card.Card{card.NewReverseCard(color.Red), num(color.Blue, 1)})
		hands[3] = []card.Card{card.NewSkipCard(color.Red), num(color.Blue, 4)}
		engine, _ := newTable(t, hands, num(color.Red, 5))

		_, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		require.Equal(t, 3, engine.Current())

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.Equal(t, 2, outcome.Skipped)
		assert.Equal(t, 1, engine.Current())
	})

	t.Run("draw_two_forces_two_cards_and_skips", func(t *testing.T) {
		hands := fourPlayers([]card.Card{card.NewDrawTwoCard(color.Red), num(color.Blue, 1)})
		engine, listener := newTable(t, hands, num(color.Red, 5), num(color.Green, 9), num(color.Yellow, 9), num(color.Blue, 8))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.Equal(t, []card.Card{
			num(color.Green, 1), num(color.Green, 2), num(color.Green, 9), num(color.Yellow, 9),
		}, engine.Hand(1))
		assert.Equal(t, 2, engine.Current())
		assert.Equal(t, 1, outcome.Penalized)
		assert.Equal(t, 1, outcome.Skipped)
		assert.Len(t, outcome.PenaltyCards, 2)
		assert.Equal(t, 1, engine.DeckSize())
		assert.Contains(t, listener.ReceivedPayloads(), event.CardsDrawnPayload{
			PlayerIndex: 1,
			PlayerName:  "Braum",
			Cards:       []card.Card{num(color.Green, 9), num(color.Yellow, 9)},
			Penalty:     true,
		})
	})

	t.Run("wild_draw_four_takes_the_chosen_color", func(t *testing.T) {
		hands := fourPlayers([]card.Card{card.NewWildDrawFourCard(), num(color.Blue, 1)})
		engine, listener := newTable(t, hands, num(color.Red, 5),
			num(color.Green, 9), num(color.Yellow, 9), num(color.Blue, 8), num(color.Blue, 7), num(color.Red, 0))

		outcome, err := engine.Apply(game.Play(0, color.Blue))
		require.NoError(t, err)
		assert.Equal(t, color.Blue, engine.Top().Color())
		assert.Equal(t, card.WildDrawFour, engine.Top().Kind())
		assert.Equal(t, 6, engine.HandSize(1))
		assert.Equal(t, 2, engine.Current())
		assert.Equal(t, 1, engine.DeckSize())
		assert.Equal(t, color.Blue, outcome.Played.Color())
		assert.Contains(t, listener.ReceivedPayloads(), event.ColorPickedPayload{PlayerIndex: 0, PlayerName: "Annie", Color: color.Blue})
	})

	t.Run("wild_card_only_changes_the_color", func(t *testing.T) {
		hands := fourPlayers([]card.Card{card.NewWildCard(), num(color.Blue, 1)})
		engine, _ := newTable(t, hands, num(color.Red, 5))

		_, err := engine.Apply(game.Play(0, color.Green))
		require.NoError(t, err)
		assert.Equal(t, color.Green, engine.Top().Color())
		assert.Equal(t, 1, engine.Current())
		assert.Equal(t, []int{0, 1}, engine.LegalMoves())
	})

	t.Run("declares_uno_at_one_card", func(t *testing.T) {
		engine, listener := newTable(t, fourPlayers([]card.Card{num(color.Red, 1), num(color.Blue, 1)}), num(color.Red, 5))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.True(t, outcome.Uno)
		assert.Contains(t, listener.ReceivedPayloads(), event.UnoDeclaredPayload{PlayerIndex: 0, PlayerName: "Annie"})
	})
}

func TestPlayWinning(t *testing.T) {
	hands := [][]card.Card{
		{card.NewDrawTwoCard(color.Red)},
		{num(color.Green, 3)},
		{num(color.Yellow, 4)},
	}
	engine, listener := newTable(t, hands, num(color.Red, 7), num(color.Blue, 1), num(color.Blue, 2))

	outcome, err := engine.Apply(game.Play(0, color.None))
	require.NoError(t, err)

	winner, over := engine.Winner()
	assert.True(t, over)
	assert.Equal(t, 0, winner)
	assert.Equal(t, 0, outcome.Winner)
	assert.True(t, engine.Over())
	assert.Equal(t, game.PhaseGameOver, engine.Phase())
	assert.Equal(t, 1, engine.HandSize(1))
	assert.Equal(t, 2, engine.DeckSize())
	assert.Equal(t, -1, outcome.Penalized)
	assert.Contains(t, listener.ReceivedPayloads(), event.WinnerFoundPayload{PlayerIndex: 0, PlayerName: "Annie"})

	_, err = engine.Apply(game.DrawThenPass())
	require.True(t, errors.Is(err, consts.ErrorsGameOver))
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	hands := fourPlayers([]card.Card{num(color.Blue, 1), card.NewWildCard()})
	hands[0] = []card.Card{num(color.Blue, 1), card.NewWildCard(), num(color.Red, 3)}
	for index := 1; index < 4; index++ {
		hands[index] = append(hands[index], num(color.Yellow, 9))
	}

	scenarios := []struct {
		description string
		decision    game.Decision
	}{
		{"card_that_cannot_follow", game.Play(0, color.None)},
		{"wild_card_without_color", game.Play(1, color.None)},
		{"wild_card_with_wild_color", game.Play(1, color.Wild)},
		{"colored_card_with_color", game.Play(2, color.Green)},
		{"index_past_the_hand", game.Play(7, color.None)},
		{"negative_index", game.Play(-1, color.None)},
		{"unknown_move", game.Decision{Move: game.Move(9)}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			engine, _ := newTable(t, hands, num(color.Red, 5), num(color.Green, 8))
			before := engine.ExtractState(0)
			deckBefore := engine.DeckCards()

			_, err := engine.Apply(scenario.decision)
			require.True(t, errors.Is(err, consts.ErrorsIllegalMove))
			require.Equal(t, before, engine.ExtractState(0))
			require.Equal(t, deckBefore, engine.DeckCards())
			require.Equal(t, game.PhaseAwaitingDecision, engine.Phase())
		})
	}
}

func TestDrawThenPass(t *testing.T) {
	engine, listener := newTable(t, fourPlayers([]card.Card{num(color.Blue, 1), num(color.Blue, 2)}), num(color.Red, 5), num(color.Red, 8))

	outcome, err := engine.Apply(game.DrawThenPass())
	require.NoError(t, err)
	assert.Equal(t, []card.Card{num(color.Blue, 1), num(color.Blue, 2), num(color.Red, 8)}, engine.Hand(0))
	assert.Equal(t, num(color.Red, 5), engine.Top())
	assert.Equal(t, 1, engine.Current())
	assert.True(t, outcome.Passed)
	assert.False(t, outcome.HasPlayed)
	assert.Equal(t, []card.Card{num(color.Red, 8)}, outcome.Drawn)
	assert.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerIndex: 0, PlayerName: "Annie"})
}

func TestDrawThenPlay(t *testing.T) {
	first := []card.Card{num(color.Blue, 1), num(color.Blue, 2)}

	t.Run("plays_a_drawn_card_that_can_follow", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5), num(color.Red, 8))

		outcome, err := engine.Apply(game.DrawThenPlay(color.None))
		require.NoError(t, err)
		assert.Equal(t, num(color.Red, 8), engine.Top())
		assert.Equal(t, first, engine.Hand(0))
		assert.Equal(t, 1, engine.Current())
		assert.True(t, outcome.HasPlayed)
		assert.Equal(t, []card.Card{num(color.Red, 8)}, outcome.Drawn)
	})

	t.Run("ignores_a_color_for_a_drawn_colored_card", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5), num(color.Red, 8))

		_, err := engine.Apply(game.DrawThenPlay(color.Green))
		require.NoError(t, err)
		assert.Equal(t, num(color.Red, 8), engine.Top())
	})

	t.Run("keeps_a_drawn_card_that_cannot_follow", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5), num(color.Green, 8))

		outcome, err := engine.Apply(game.DrawThenPlay(color.None))
		require.NoError(t, err)
		assert.Equal(t, num(color.Red, 5), engine.Top())
		assert.Equal(t, 3, engine.HandSize(0))
		assert.Equal(t, 1, engine.Current())
		assert.True(t, outcome.Passed)
	})

	t.Run("keeps_a_drawn_wild_card_without_color", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5), card.NewWildCard())

		outcome, err := engine.Apply(game.DrawThenPlay(color.None))
		require.NoError(t, err)
		assert.Equal(t, num(color.Red, 5), engine.Top())
		assert.Equal(t, card.NewWildCard(), engine.Hand(0)[2])
		assert.True(t, outcome.Passed)
	})

	t.Run("plays_a_drawn_wild_card_with_color", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5), card.NewWildCard())

		_, err := engine.Apply(game.DrawThenPlay(color.Yellow))
		require.NoError(t, err)
		assert.Equal(t, color.Yellow, engine.Top().Color())
		assert.Equal(t, card.WildColor, engine.Top().Kind())
		assert.Equal(t, 2, engine.HandSize(0))
	})

	t.Run("applies_the_drawn_card_effect", func(t *testing.T) {
		engine, _ := newTable(t, fourPlayers(first), num(color.Red, 5),
			card.NewDrawTwoCard(color.Red), num(color.Green, 8), num(color.Green, 9))

		outcome, err := engine.Apply(game.DrawThenPlay(color.None))
		require.NoError(t, err)
		assert.Equal(t, 4, engine.HandSize(1))
		assert.Equal(t, 2, engine.Current())
		assert.Equal(t, 1, outcome.Skipped)
	})
}

func TestReplenish(t *testing.T) {
	t.Run("rebuilds_the_deck_under_the_top", func(t *testing.T) {
		hands := [][]card.Card{
			{card.NewWildCard(), num(color.Green, 2), num(color.Red, 9)},
			{num(color.Blue, 9), num(color.Blue, 8), num(color.Yellow, 7)},
		}
		engine, listener := newTable(t, hands, num(color.Red, 5), num(color.Yellow, 1))

		_, err := engine.Apply(game.Play(0, color.Green))
		require.NoError(t, err)
		_, err = engine.Apply(game.DrawThenPass())
		require.NoError(t, err)
		_, err = engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		require.Zero(t, engine.DeckSize())

		var reclaimedTable []card.Card
		engine.Events().DeckReplenished.AddListener(replenishSpy(func() {
			reclaimedTable = append(engine.DeckCards(), engine.PileCards()...)
		}))

		outcome, err := engine.Apply(game.DrawThenPass())
		require.NoError(t, err)
		assert.True(t, outcome.Replenished)
		assert.Equal(t, num(color.Green, 2), engine.Top())
		assert.Equal(t, []card.Card{num(color.Green, 2)}, engine.PileCards())
		assert.ElementsMatch(t, []card.Card{num(color.Red, 5), card.NewWildCard(), num(color.Green, 2)}, reclaimedTable)
		assert.Equal(t, 1, engine.DeckSize())
		assert.Equal(t, 8, engine.TotalCards())
		assert.Contains(t, listener.ReceivedPayloads(), event.DeckReplenishedPayload{Reclaimed: 2})
	})

	t.Run("forced_draw_awards_what_is_available", func(t *testing.T) {
		hands := [][]card.Card{
			{card.NewDrawTwoCard(color.Red), num(color.Blue, 1)},
			{num(color.Green, 3), num(color.Green, 4)},
			{num(color.Yellow, 5), num(color.Yellow, 6)},
		}
		engine, _ := newTable(t, hands, num(color.Red, 7))

		outcome, err := engine.Apply(game.Play(0, color.None))
		require.NoError(t, err)
		assert.True(t, outcome.Exhausted)
		assert.Equal(t, []card.Card{num(color.Red, 7)}, outcome.PenaltyCards)
		assert.Equal(t, 3, engine.HandSize(1))
		assert.Equal(t, 2, engine.Current())
		assert.Equal(t, 7, engine.TotalCards())
	})

	t.Run("draw_with_nothing_left_still_passes", func(t *testing.T) {
		hands := [][]card.Card{
			{num(color.Blue, 1)},
			{num(color.Green, 2)},
		}
		engine, _ := newTable(t, hands, num(color.Red, 7))

		outcome, err := engine.Apply(game.DrawThenPlay(color.None))
		require.NoError(t, err)
		assert.True(t, outcome.Exhausted)
		assert.True(t, outcome.Passed)
		assert.Empty(t, outcome.Drawn)
		assert.Equal(t, 1, engine.Current())
	})
}

type replenishSpy func()

func (s replenishSpy) OnDeckReplenished(event.DeckReplenishedPayload) {
	s()
}

func TestExtractState(t *testing.T) {
	engine, _ := newTable(t, fourPlayers([]card.Card{num(color.Red, 1), num(color.Blue, 1)}), num(color.Red, 5), num(color.Green, 8))

	state := engine.ExtractState(0)
	assert.Equal(t, 0, state.CurrentPlayer)
	assert.Equal(t, "Annie", state.CurrentPlayerName)
	assert.Equal(t, num(color.Red, 5), state.LastPlayedCard)
	assert.Equal(t, []string{"Annie", "Braum", "Caitlyn", "Draven"}, state.PlayerSequence)
	assert.Equal(t, []int{2, 2, 2, 2}, state.PlayerHandCounts)
	assert.Equal(t, []int{0}, state.LegalMoves)
	assert.True(t, state.IsLegal(0))
	assert.False(t, state.IsLegal(1))
	assert.Equal(t, 1, state.DeckSize)
	assert.Contains(t, state.String(), "Annie (2 card(s))")

	other := engine.ExtractState(2)
	assert.Empty(t, other.LegalMoves)
	assert.Equal(t, []card.Card{num(color.Yellow, 1), num(color.Yellow, 2)}, other.ViewerHand)
}

func TestNextPlayerIndex(t *testing.T) {
	engine, _ := newTable(t, fourPlayers([]card.Card{card.NewReverseCard(color.Red), num(color.Blue, 1)}), num(color.Red, 5))
	require.Equal(t, 1, engine.NextPlayerIndex())

	_, err := engine.Apply(game.Play(0, color.None))
	require.NoError(t, err)
	require.Equal(t, 3, engine.Current())
	require.Equal(t, 2, engine.NextPlayerIndex())
}
