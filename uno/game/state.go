package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is what one player may see of the table.
type State struct {
	CurrentPlayer     int
	CurrentPlayerName string
	LastPlayedCard    card.Card
	Direction         Direction
	PlayerSequence    []string
	PlayerHandCounts  []int
	DeckSize          int
	PileSize          int

	Viewer     int
	ViewerHand []card.Card
	// LegalMoves is empty unless the viewer is the current player.
	LegalMoves []int

	Over   bool
	Winner int
}

func (e *Engine) ExtractState(viewer int) State {
	playerSequence := make([]string, 0, len(e.seats))
	playerHandCounts := make([]int, 0, len(e.seats))
	for _, s := range e.seats {
		playerSequence = append(playerSequence, s.name)
		playerHandCounts = append(playerHandCounts, s.hand.Size())
	}

	legalMoves := []int{}
	if viewer == e.cycler.Current() {
		legalMoves = e.LegalMoves()
	}

	return State{
		CurrentPlayer:     e.cycler.Current(),
		CurrentPlayerName: e.seats[e.cycler.Current()].name,
		LastPlayedCard:    e.Top(),
		Direction:         e.cycler.Direction(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          e.deck.Size(),
		PileSize:          e.pile.Size(),
		Viewer:            viewer,
		ViewerHand:        e.seats[viewer].hand.Cards(),
		LegalMoves:        legalMoves,
		Over:              e.Over(),
		Winner:            e.winner,
	}
}

// IsLegal reports whether index is one of the viewer's legal moves.
func (s State) IsLegal(index int) bool {
	for _, move := range s.LegalMoves {
		if move == index {
			return true
		}
	}
	return false
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for index, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[index])
		if index == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))

	var handCards []string
	for index, handCard := range s.ViewerHand {
		marker := " "
		if s.IsLegal(index) {
			marker = "+"
		}
		handCards = append(handCards, fmt.Sprintf("%s%d:%s", marker, index+1, handCard))
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(handCards, " ")))

	return strings.Join(lines, "\n")
}
