package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	Players  = 4
	HandSize = 7

	MinPlayers = 2
	MaxPlayers = 10

	AuthTimeout = 3 * time.Second
	PlayTimeout = 40 * time.Second

	// SessionLifetime bounds how long an abandoned remote game stays registered.
	SessionLifetime = 24 * time.Hour
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")

	ErrorsEmptyDeck        = NewErr(2, true, "Deck is empty. ")
	ErrorsNoCardsAvailable = NewErr(2, false, "No cards available. ")
	ErrorsIllegalMove      = NewErr(2, false, "Illegal move. ")
	ErrorsGameOver         = NewErr(2, true, "Game is over. ")
	ErrorsNotStarted       = NewErr(2, true, "Game not started. ")
	ErrorsTurnLimit        = NewErr(2, true, "Turn limit reached. ")
	ErrorsPlayersInvalid   = NewErr(2, true, "Game players invalid. ")
)
