package network

import (
	"errors"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

// Remote plays the human seat over a ratel connection.
type Remote struct {
	*msg.Narrator

	conn    *network.Conn
	data    chan *protocol.Packet
	timeout time.Duration
	state   game.State
}

func NewRemote(conn *network.Conn, timeout time.Duration, seat int) *Remote {
	r := &Remote{
		conn:    conn,
		data:    make(chan *protocol.Packet, 8),
		timeout: timeout,
	}
	r.Narrator = msg.NewNarrator(seat, r.WriteString)
	return r
}

// Listening forwards incoming packets until the connection fails.
func (r *Remote) Listening() error {
	defer close(r.data)
	for {
		pack, err := r.conn.Read()
		if err != nil {
			return err
		}
		select {
		case r.data <- pack:
		default:
			log.Infof("dropped packet from %d: %s\n", r.conn.ID(), pack.String())
		}
	}
}

func (r *Remote) WriteString(data string) {
	err := r.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
	if err != nil {
		log.Error(err)
	}
}

func (r *Remote) RenderState(state game.State) {
	r.state = state
	r.WriteString(msg.Message.HumanPlayerTurnStarted(state.PlayerSequence[state.Viewer]) + msg.Sprintln(state))
	if len(state.LegalMoves) == 0 {
		r.WriteString(msg.Message.HumanPlayerHasNoMatchingCardsInHand(state.PlayerSequence[state.Viewer], state.LastPlayedCard))
	}
}

// RequestHumanDecision falls back to the first legal card, or a draw, when
// the player does not answer in time.
func (r *Remote) RequestHumanDecision(legal []int, canDraw bool) (game.Decision, error) {
	for {
		r.WriteString(msg.Message.DecisionPrompt(legal, canDraw))
		answer, err := r.askForString()
		if errors.Is(err, consts.ErrorsTimeout) {
			return player.FirstLegal(r.state, color.Red), nil
		}
		if err != nil {
			return game.Decision{}, err
		}
		decision, err := ui.ParseDecision(answer, canDraw)
		if errors.Is(err, consts.ErrorsExist) {
			return game.Decision{}, err
		}
		if err != nil {
			r.WriteString(msg.Message.InvalidInput(answer))
			continue
		}
		return decision, nil
	}
}

func (r *Remote) RequestColorChoice() (color.Color, error) {
	for {
		r.WriteString(msg.Message.ColorPrompt())
		answer, err := r.askForString()
		if errors.Is(err, consts.ErrorsTimeout) {
			return color.Red, nil
		}
		if err != nil {
			return color.None, err
		}
		chosen, err := ui.ParseColor(answer)
		if errors.Is(err, consts.ErrorsExist) {
			return color.None, err
		}
		if err != nil {
			r.WriteString(msg.Message.UnknownColor(answer))
			continue
		}
		return chosen, nil
	}
}

func (r *Remote) NotifyRejected(err error) {
	r.WriteString(msg.Message.MoveRejected(err))
}

func (r *Remote) askForString() (string, error) {
	r.drain()
	r.WriteString(consts.IsStart)
	defer r.WriteString(consts.IsStop)

	var packet *protocol.Packet
	select {
	case packet = <-r.data:
	case <-time.After(r.timeout):
		return "", consts.ErrorsTimeout
	}
	if packet == nil {
		return "", consts.ErrorsChanClosed
	}
	answer := strings.TrimSpace(packet.String())
	if strings.ToLower(answer) == "exit" {
		return "", consts.ErrorsExist
	}
	return answer, nil
}

// drain drops input typed while the player was not asked anything.
func (r *Remote) drain() {
	for {
		select {
		case packet, ok := <-r.data:
			if !ok {
				return
			}
			if packet != nil {
				log.Infof("ignored input from %d: %s\n", r.conn.ID(), packet.String())
			}
		default:
			return
		}
	}
}
