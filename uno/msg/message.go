package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", joinCards(cards))
}

func (m MessageWriter) HumanPlayerDealt(cards []card.Card) string {
	return Sprintfln("Your cards: %s", joinCards(cards))
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return Sprintfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerDeclaredUno(playerName string) string {
	return Sprintfln("%s has one card left: UNO!", playerName)
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) string {
	if clockwise {
		return Sprintln("Turn order has been reversed, now clockwise!")
	}
	return Sprintln("Turn order has been reversed, now counterclockwise!")
}

func (m MessageWriter) DeckReplenished(reclaimed int) string {
	return Sprintfln("The discard pile was shuffled back into the deck (%d cards)!", reclaimed)
}

func (m MessageWriter) DecisionPrompt(legal []int, canDraw bool) string {
	options := make([]string, 0, 2)
	if len(legal) > 0 {
		numbers := make([]string, 0, len(legal))
		for _, index := range legal {
			numbers = append(numbers, fmt.Sprint(index+1))
		}
		options = append(options, fmt.Sprintf("enter a card number (%s)", strings.Join(numbers, ", ")))
	}
	if canDraw {
		options = append(options, "'d' to draw and keep", "'p' to draw and play it if possible")
	}
	return Sprintfln("Your move: %s", strings.Join(options, ", "))
}

func (m MessageWriter) ColorPrompt() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) UnknownColor(colorName string) string {
	return Sprintfln("Unknown color '%s'", colorName)
}

func (m MessageWriter) InvalidInput(input string) string {
	return Sprintfln("Invalid input '%s'", input)
}

func (m MessageWriter) MoveRejected(err error) string {
	return Sprintfln("%s Try again.", strings.TrimSpace(err.Error()))
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func joinCards(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}
