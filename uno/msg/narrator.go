package msg

import (
	"github.com/ratel-online/uno/uno/event"
)

// Narrator turns game events into messages for one seat. Cards drawn by
// the viewer are shown, other players only reveal how many they drew.
type Narrator struct {
	Viewer int
	Write  func(message string)
}

func NewNarrator(viewer int, write func(message string)) *Narrator {
	return &Narrator{Viewer: viewer, Write: write}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.Write(Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.Write(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.Write(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.Write(Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerIndex != n.Viewer {
		if len(payload.Cards) > 0 {
			n.Write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
		}
		return
	}
	switch {
	case len(payload.Cards) == 0:
	case !payload.Penalty && len(payload.Cards) > 1:
		n.Write(Message.HumanPlayerDealt(payload.Cards))
	default:
		n.Write(Message.HumanPlayerDrewCards(payload.Cards))
	}
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.Write(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	n.Write(Message.TurnOrderReversed(payload.Clockwise))
}

func (n *Narrator) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	n.Write(Message.PlayerDeclaredUno(payload.PlayerName))
}

func (n *Narrator) OnDeckReplenished(payload event.DeckReplenishedPayload) {
	n.Write(Message.DeckReplenished(payload.Reclaimed))
}

func (n *Narrator) OnWinnerFound(payload event.WinnerFoundPayload) {
	n.Write(Message.WinnerFound(payload.PlayerName))
}
