package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

type Move int

const (
	MovePlay Move = iota
	MoveDrawThenPass
	MoveDrawThenPlay
)

// Decision is the single choice that moves the engine through one turn.
// Color is only read when a wild card ends up being played.
type Decision struct {
	Move  Move
	Index int
	Color color.Color
}

func Play(index int, chosen color.Color) Decision {
	return Decision{Move: MovePlay, Index: index, Color: chosen}
}

func DrawThenPass() Decision {
	return Decision{Move: MoveDrawThenPass}
}

// DrawThenPlay draws a card and plays it when it can follow the top. The
// color is used if the drawn card turns out to be wild.
func DrawThenPlay(chosen color.Color) Decision {
	return Decision{Move: MoveDrawThenPlay, Color: chosen}
}

func (d Decision) String() string {
	switch d.Move {
	case MovePlay:
		if d.Color != color.None {
			return fmt.Sprintf("play #%d as %s", d.Index+1, d.Color.Name())
		}
		return fmt.Sprintf("play #%d", d.Index+1)
	case MoveDrawThenPass:
		return "draw"
	case MoveDrawThenPlay:
		return "draw and play"
	default:
		return fmt.Sprintf("move(%d)", int(d.Move))
	}
}
