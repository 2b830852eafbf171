package database

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/session"
)

var sessions = hashmap.New()
var playerSessions = hashmap.New()

// registry guards the pair of maps across Register and Unregister.
var registry sync.Mutex

// Entry is a running remote game.
type Entry struct {
	ID         string
	PlayerID   int64
	PlayerName string
	StartedAt  time.Time
	Session    *session.Session

	cancel func()
}

type Summary struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Opponents []string  `json:"opponents"`
	StartedAt time.Time `json:"startedAt"`
	Turns     int       `json:"turns"`
	Over      bool      `json:"over"`
	Winner    string    `json:"winner,omitempty"`
}

// Register records s as the game of playerID. A player runs one game at a
// time. cancel is called when the game is reaped.
func Register(playerID int64, playerName string, s *session.Session, cancel func()) (*Entry, error) {
	registry.Lock()
	defer registry.Unlock()
	if GetByPlayer(playerID) != nil {
		return nil, consts.ErrorsExist
	}
	entry := &Entry{
		ID:         s.ID,
		PlayerID:   playerID,
		PlayerName: playerName,
		StartedAt:  s.StartedAt,
		Session:    s,
		cancel:     cancel,
	}
	playerSessions.Set(playerID, entry.ID)
	sessions.Set(entry.ID, entry)
	return entry, nil
}

// Unregister removes the game and logs its summary.
func Unregister(id string) {
	registry.Lock()
	entry := Get(id)
	if entry == nil {
		registry.Unlock()
		return
	}
	sessions.Del(id)
	playerSessions.Del(entry.PlayerID)
	registry.Unlock()
	log.Infof("session finished: %s\n", json.Marshal(entry.Summary()))
}

func Get(id string) *Entry {
	if v, ok := sessions.Get(id); ok {
		return v.(*Entry)
	}
	return nil
}

func GetByPlayer(playerID int64) *Entry {
	if v, ok := playerSessions.Get(playerID); ok {
		return Get(v.(string))
	}
	return nil
}

func List() []*Entry {
	list := make([]*Entry, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Entry))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].StartedAt.Before(list[j].StartedAt)
	})
	return list
}

// Summary must be called from the goroutine running the session.
func (e *Entry) Summary() Summary {
	engine := e.Session.Engine()
	opponents := make([]string, 0, engine.Players())
	for index := 1; index < engine.Players(); index++ {
		opponents = append(opponents, engine.PlayerName(index))
	}
	summary := Summary{
		ID:        e.ID,
		Player:    e.PlayerName,
		Opponents: opponents,
		StartedAt: e.StartedAt,
		Turns:     e.Session.Turns(),
	}
	if winner, over := engine.Winner(); over {
		summary.Over = true
		summary.Winner = engine.PlayerName(winner)
	}
	return summary
}

// Reap cancels every game started before now minus lifetime and returns how
// many were cancelled. Cancelled games unregister themselves when their
// session returns.
func Reap(now time.Time, lifetime time.Duration) int {
	expired := make([]*Entry, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		entry := e.Value().(*Entry)
		if now.Sub(entry.StartedAt) > lifetime {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		log.Infof("session %s of %s expired\n", entry.ID, entry.PlayerName)
		if entry.cancel != nil {
			entry.cancel()
		}
	}
	return len(expired)
}

func StartReaper(interval time.Duration, lifetime time.Duration) {
	async.Async(func() {
		for {
			time.Sleep(interval)
			if reaped := Reap(time.Now(), lifetime); reaped > 0 {
				log.Infof("reaped %d session(s), %d still running\n", reaped, len(List()))
			}
		}
	})
}
