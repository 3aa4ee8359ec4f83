package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
)

// parseFlags applies the server flags:
//
//	-g string   gRPC bind address
//	-p string   push (HTTP) bind address
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-l string   log level
//
// Everything else in args (including -c) is filtered out first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-g", "-p", "-d", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "g", cfg.EndpointAddrGRPC, "gRPC bind address")
	fs.StringVar(&cfg.EndpointAddrPush, "p", cfg.EndpointAddrPush, "push endpoint bind address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "JWT secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	access := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refresh := fs.Int("r", int(cfg.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.AccessTokenValidityDuration = time.Duration(*access) * time.Minute
	cfg.RefreshTokenValidityDuration = time.Duration(*refresh) * time.Minute
	return nil
}
