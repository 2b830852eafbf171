package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
)

const (
	ModeConsole   = "console"
	ModeTcp       = "tcp"
	ModeWebsocket = "ws"
)

type Config struct {
	Mode         string
	Addr         string
	WsAddr       string
	Seed         int64
	PlayerName   string
	MessageDelay time.Duration
	PlayTimeout  time.Duration
	MaxTurns     int
}

func defaults() Config {
	return Config{
		Mode:         ModeConsole,
		Addr:         ":9999",
		WsAddr:       ":9998",
		PlayerName:   "Player",
		MessageDelay: time.Second,
		PlayTimeout:  consts.PlayTimeout,
	}
}

// LoadEnv reads .env style files into the environment. Variables that are
// already set win.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load reads UNO_* variables from the environment, then lets args override
// them.
func Load(args []string) (Config, error) {
	config := defaults()
	var err error
	config.Mode = env("UNO_MODE", config.Mode)
	config.Addr = env("UNO_ADDR", config.Addr)
	config.WsAddr = env("UNO_WS_ADDR", config.WsAddr)
	config.PlayerName = env("UNO_PLAYER_NAME", config.PlayerName)
	if config.Seed, err = envInt64("UNO_SEED", config.Seed); err != nil {
		return config, err
	}
	if config.MessageDelay, err = envDuration("UNO_MESSAGE_DELAY", config.MessageDelay); err != nil {
		return config, err
	}
	if config.PlayTimeout, err = envDuration("UNO_PLAY_TIMEOUT", config.PlayTimeout); err != nil {
		return config, err
	}

	flags := flag.NewFlagSet("uno", flag.ContinueOnError)
	flags.StringVar(&config.Mode, "mode", config.Mode, "console, tcp or ws")
	flags.StringVar(&config.Addr, "addr", config.Addr, "tcp listen address")
	flags.StringVar(&config.WsAddr, "ws", config.WsAddr, "websocket listen address")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "random seed, 0 for a random game")
	flags.StringVar(&config.PlayerName, "name", config.PlayerName, "human player name")
	flags.DurationVar(&config.MessageDelay, "delay", config.MessageDelay, "pause after each console message")
	flags.DurationVar(&config.PlayTimeout, "timeout", config.PlayTimeout, "remote player answer timeout")
	flags.IntVar(&config.MaxTurns, "turns", config.MaxTurns, "stop a game after this many turns, 0 for no limit")
	if err = flags.Parse(args); err != nil {
		return config, err
	}

	switch config.Mode {
	case ModeConsole, ModeTcp, ModeWebsocket:
	default:
		return config, fmt.Errorf("%w: unknown mode %q", consts.ErrorsInputInvalid, config.Mode)
	}
	return config, nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func envInt64(key string, fallback int64) (int64, error) {
	value := env(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := env(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
