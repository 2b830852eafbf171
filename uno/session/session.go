package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
)

type Config struct {
	Rand *rand.Rand
	// Deck replaces the shuffled standard deck.
	Deck     *game.Deck
	Events   *event.Bus
	HandSize int
	// MaxTurns stops a game that runs longer. Zero means no limit.
	MaxTurns int
}

type Result struct {
	Winner     int
	WinnerName string
	Turns      int
}

// Session drives one game from the deal to the winner.
type Session struct {
	ID        string
	StartedAt time.Time

	players  []player.Player
	engine   *game.Engine
	maxTurns int
	turns    int
}

// New seats players in the given order and deals.
func New(players []player.Player, config Config) (*Session, error) {
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name())
	}
	engine, err := game.New(game.Config{
		Players:  names,
		HandSize: config.HandSize,
		Rand:     rng,
		Deck:     config.Deck,
		Events:   config.Events,
	})
	if err != nil {
		return nil, err
	}
	if err = engine.Setup(); err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		players:   players,
		engine:    engine,
		maxTurns:  config.MaxTurns,
	}, nil
}

func (s *Session) Engine() *game.Engine {
	return s.engine
}

func (s *Session) Players() []player.Player {
	return s.players
}

func (s *Session) Turns() int {
	return s.turns
}

// Run plays turns until somebody wins.
func (s *Session) Run() (Result, error) {
	log.Infof("session %s started with %d players\n", s.ID, len(s.players))
	for !s.engine.Over() {
		if s.maxTurns > 0 && s.turns >= s.maxTurns {
			return s.result(), fmt.Errorf("%w: %d turns", consts.ErrorsTurnLimit, s.turns)
		}
		if _, err := s.Step(); err != nil {
			log.Errorf("session %s aborted: %v\n", s.ID, err)
			return s.result(), err
		}
	}
	result := s.result()
	log.Infof("session %s won by %s after %d turns\n", s.ID, result.WinnerName, result.Turns)
	return result, nil
}

// Step asks the current player for a decision and applies it. A player
// that can be told about a rejected decision is asked again.
func (s *Session) Step() (game.Outcome, error) {
	current := s.engine.Current()
	p := s.players[current]
	for {
		decision, err := p.Decide(s.engine.ExtractState(current))
		if err != nil {
			return game.Outcome{}, err
		}
		outcome, err := s.engine.Apply(decision)
		if err == nil {
			s.turns++
			return outcome, nil
		}
		rejected, ok := p.(player.Rejected)
		if !ok || !errors.Is(err, consts.ErrorsIllegalMove) {
			return game.Outcome{}, fmt.Errorf("%s: %w", p.Name(), err)
		}
		rejected.NotifyRejected(err)
	}
}

func (s *Session) result() Result {
	winner, over := s.engine.Winner()
	if !over {
		return Result{Winner: -1, Turns: s.turns}
	}
	return Result{
		Winner:     winner,
		WinnerName: s.players[winner].Name(),
		Turns:      s.turns,
	}
}
