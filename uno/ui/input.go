package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// ParseDecision reads one line of player input: a 1-based card number, "d"
// to draw and keep, or "p" to draw and play. A color may follow for wild
// cards, e.g. "3 red" or "p g".
func ParseDecision(input string, canDraw bool) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 || len(fields) > 2 {
		return game.Decision{}, consts.ErrorsInputInvalid
	}
	if fields[0] == "exit" {
		return game.Decision{}, consts.ErrorsExist
	}
	chosen := color.None
	if len(fields) == 2 {
		var err error
		if chosen, err = color.ByName(fields[1]); err != nil {
			return game.Decision{}, fmt.Errorf("%w: %v", consts.ErrorsInputInvalid, err)
		}
	}

	switch fields[0] {
	case "d", "draw":
		if !canDraw || chosen != color.None {
			return game.Decision{}, consts.ErrorsInputInvalid
		}
		return game.DrawThenPass(), nil
	case "p", "play":
		if !canDraw {
			return game.Decision{}, consts.ErrorsInputInvalid
		}
		return game.DrawThenPlay(chosen), nil
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil || number < 1 {
		return game.Decision{}, consts.ErrorsInputInvalid
	}
	return game.Play(number-1, chosen), nil
}

func ParseColor(input string) (color.Color, error) {
	input = strings.TrimSpace(input)
	if strings.ToLower(input) == "exit" {
		return color.None, consts.ErrorsExist
	}
	return color.ByName(input)
}
