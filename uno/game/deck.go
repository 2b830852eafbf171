package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the undealt pool. The first card is the top.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// NewDeck returns the 108 standard cards, shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	deck := NewDeckOf(rng, StandardCards()...)
	deck.Shuffle()
	return deck
}

// NewDeckOf returns a deck holding cards in the given order.
func NewDeckOf(rng *rand.Rand, cards ...card.Card) *Deck {
	deck := &Deck{
		cards: make([]card.Card, 0, len(cards)),
		rng:   rng,
	}
	deck.cards = append(deck.cards, cards...)
	return deck
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsEmptyDeck
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, nil
}

// AddToPool puts cards back at the bottom of the deck.
func (d *Deck) AddToPool(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) containsKind(kind card.Kind) bool {
	for _, c := range d.cards {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

func StandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.Playable {
		cards = append(cards, createColorCards(cardColor)...)
	}

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
