package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/session"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error(err)
	}
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	switch cfg.Mode {
	case config.ModeConsole:
		if err := playConsole(cfg); err != nil && !errors.Is(err, consts.ErrorsExist) {
			log.Error(err)
			os.Exit(1)
		}
	case config.ModeTcp, config.ModeWebsocket:
		serve(cfg)
	}
}

func playConsole(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	console := ui.NewConsole(os.Stdin, color.Stdout, cfg.MessageDelay, 0)
	console.Print(msg.Message.Welcome())
	events := event.NewBus()
	events.Subscribe(console)

	s, err := session.New(player.CreatePlayers(consts.Players, cfg.PlayerName, console, rng), session.Config{
		Rand:     rng,
		Events:   events,
		MaxTurns: cfg.MaxTurns,
	})
	if err != nil {
		return err
	}
	_, err = s.Run()
	return err
}

func serve(cfg config.Config) {
	database.StartReaper(time.Minute, consts.SessionLifetime)
	handler := network.Handler{
		Seed:        cfg.Seed,
		AuthTimeout: consts.AuthTimeout,
		PlayTimeout: cfg.PlayTimeout,
	}
	var server network.Network = network.NewTcpServer(cfg.Addr, handler)
	if cfg.Mode == config.ModeWebsocket {
		server = network.NewWebsocketServer(cfg.WsAddr, handler)
	}
	log.Error(server.Serve())
}
