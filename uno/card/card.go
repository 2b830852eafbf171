package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	WildColor
	WildDrawFour
)

var kindNames = map[Kind]string{
	Number:       "number",
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw two",
	WildColor:    "wild",
	WildDrawFour: "wild draw four",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsWild reports whether cards of this kind can be played on anything.
func (k Kind) IsWild() bool {
	return k == WildColor || k == WildDrawFour
}

// Card is an immutable value. Two cards with the same color, kind and number
// are interchangeable.
type Card struct {
	color  color.Color
	kind   Kind
	number int
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{color: c, kind: Number, number: number}
}

func NewSkipCard(c color.Color) Card {
	return Card{color: c, kind: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{color: c, kind: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{color: c, kind: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, kind: WildColor}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, kind: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Kind() Kind {
	return c.kind
}

// Number is meaningful only for Number cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.kind.IsWild()
}

// WithColor fixes the color of a wild card as it is placed on the pile.
func (c Card) WithColor(chosen color.Color) (Card, error) {
	if !c.IsWild() {
		return c, fmt.Errorf("card %s is not wild", c)
	}
	if c.color != color.Wild {
		return c, fmt.Errorf("card %s already has a color", c)
	}
	if !chosen.IsPlayable() {
		return c, fmt.Errorf("color %s cannot be assigned", chosen.Name())
	}
	c.color = chosen
	return c, nil
}

// Uncolored returns a wild card to its printed state. Other cards are
// returned unchanged.
func (c Card) Uncolored() Card {
	if c.IsWild() {
		c.color = color.Wild
	}
	return c
}

// Effect resolves what playing the card does to the turn order.
func (c Card) Effect() action.Effect {
	switch c.kind {
	case Number:
		return action.Effect{}
	case Skip:
		return action.NewSkipTurnEffect()
	case Reverse:
		return action.NewReverseTurnsEffect()
	case DrawTwo:
		return action.NewDrawCardsEffect(2)
	case WildColor:
		return action.NewPickColorEffect()
	case WildDrawFour:
		return action.NewPickColorEffect().Combine(action.NewDrawCardsEffect(4))
	default:
		return action.Effect{}
	}
}

func (c Card) String() string {
	switch c.kind {
	case Number:
		return c.color.Paintf("[%d]", c.number)
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case WildColor:
		if c.color != color.Wild {
			return c.color.Paint("(*)") + fmt.Sprintf("(%s)", c.color.Name())
		}
		return c.color.Paint("(*)")
	case WildDrawFour:
		if c.color != color.Wild {
			return c.color.Paint("+4!") + fmt.Sprintf("(%s)", c.color.Name())
		}
		return c.color.Paint("+4!")
	default:
		return fmt.Sprintf("card(%d)", int(c.kind))
	}
}
