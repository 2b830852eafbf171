package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

// LegalMoves lists, in hand order, the indexes of cards that can follow top.
func (h *Hand) LegalMoves(top card.Card) []int {
	moves := make([]int, 0, len(h.cards))
	for index, candidateCard := range h.cards {
		if card.CanFollow(candidateCard, top) {
			moves = append(moves, index)
		}
	}
	return moves
}

func (h *Hand) Remove(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, fmt.Errorf("%w: no card at index %d", consts.ErrorsIllegalMove, index)
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) IsUno() bool {
	return len(h.cards) == 1
}

func (h *Hand) HasWon() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}
