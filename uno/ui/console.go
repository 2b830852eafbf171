package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

// Console plays the human seat on a terminal.
type Console struct {
	*msg.Narrator

	scanner *bufio.Scanner
	out     io.Writer
	delay   time.Duration
}

// NewConsole reads answers from in and prints to out, pausing delay after
// every message so bot turns can be followed.
func NewConsole(in io.Reader, out io.Writer, delay time.Duration, seat int) *Console {
	c := &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		delay:   delay,
	}
	c.Narrator = msg.NewNarrator(seat, c.Print)
	return c
}

func (c *Console) Print(message string) {
	fmt.Fprint(c.out, message)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Print(msg.Sprintfln(format, args...))
}

func (c *Console) RenderState(state game.State) {
	c.Print(msg.Message.HumanPlayerTurnStarted(state.PlayerSequence[state.Viewer]))
	c.Print(msg.Sprintln(state))
	if len(state.LegalMoves) == 0 {
		c.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(state.PlayerSequence[state.Viewer], state.LastPlayedCard))
	}
}

func (c *Console) RequestHumanDecision(legal []int, canDraw bool) (game.Decision, error) {
	for {
		c.Print(msg.Message.DecisionPrompt(legal, canDraw))
		line, err := c.readLine()
		if err != nil {
			return game.Decision{}, err
		}
		decision, err := ParseDecision(line, canDraw)
		if errors.Is(err, consts.ErrorsExist) {
			return game.Decision{}, err
		}
		if err != nil {
			c.Print(msg.Message.InvalidInput(line))
			continue
		}
		return decision, nil
	}
}

func (c *Console) RequestColorChoice() (color.Color, error) {
	for {
		c.Print(msg.Message.ColorPrompt())
		line, err := c.readLine()
		if err != nil {
			return color.None, err
		}
		chosen, err := ParseColor(line)
		if errors.Is(err, consts.ErrorsExist) {
			return color.None, err
		}
		if err != nil {
			c.Print(msg.Message.UnknownColor(line))
			continue
		}
		return chosen, nil
	}
}

func (c *Console) NotifyRejected(err error) {
	c.Print(msg.Message.MoveRejected(err))
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", consts.ErrorsChanClosed
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}
