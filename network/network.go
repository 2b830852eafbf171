package network

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/session"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Handler runs one single player game per connection.
type Handler struct {
	// Seed makes every game on the server deal the same way. Zero means random.
	Seed        int64
	AuthTimeout time.Duration
	PlayTimeout time.Duration
}

var games int64

func (h Handler) handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := h.loginAuth(c)
	if err == nil && authInfo.ID == 0 {
		err = consts.ErrorsAuthFail
	}
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)

	remote := NewRemote(c, h.playTimeout(), 0)
	async.Async(func() {
		if err := remote.Listening(); err != nil {
			log.Infof("player %d disconnected: %v\n", authInfo.ID, err)
		}
	})

	remote.WriteString(msg.Message.Welcome())
	rng := h.rand()
	events := event.NewBus()
	events.Subscribe(remote)
	s, err := session.New(player.CreatePlayers(consts.Players, authInfo.Name, remote, rng), session.Config{
		Rand:   rng,
		Events: events,
	})
	if err != nil {
		return err
	}
	entry, err := database.Register(authInfo.ID, authInfo.Name, s, func() { _ = c.Close() })
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	defer database.Unregister(entry.ID)

	_, err = s.Run()
	if errors.Is(err, consts.ErrorsExist) {
		return nil
	}
	return err
}

func (h Handler) loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	timeout := h.AuthTimeout
	if timeout <= 0 {
		timeout = consts.AuthTimeout
	}
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}

func (h Handler) playTimeout() time.Duration {
	if h.PlayTimeout <= 0 {
		return consts.PlayTimeout
	}
	return h.PlayTimeout
}

func (h Handler) rand() *rand.Rand {
	if h.Seed != 0 {
		return rand.New(rand.NewSource(h.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano() + atomic.AddInt64(&games, 1)))
}
