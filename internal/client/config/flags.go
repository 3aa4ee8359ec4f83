package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-f", "-k", "-i", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the API server")
	fs.StringVar(&cfg.PushEndpointURL, "w", cfg.PushEndpointURL, "push endpoint URL")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	handshake := fs.Int("k", int(cfg.HandshakeTimeout.Seconds()), "push handshake timeout (in seconds)")
	poll := fs.Int("i", int(cfg.HistoryPollInterval.Seconds()), "history poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.HandshakeTimeout = time.Duration(*handshake) * time.Second
	cfg.HistoryPollInterval = time.Duration(*poll) * time.Second
	return nil
}
