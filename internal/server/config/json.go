package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
)

// JsonConfig is the on-disk shape. Durations accept "60m" style strings or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrPush             string         `json:"endpoint_addr_push"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	TokenIssuer                  string         `json:"token_issuer"`
	TokenAudience                string         `json:"token_audience"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Fields missing
// from the file keep their current values.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrGRPC, jc.EndpointAddrGRPC)
	setString(&cfg.EndpointAddrPush, jc.EndpointAddrPush)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	setString(&cfg.TokenIssuer, jc.TokenIssuer)
	setString(&cfg.TokenAudience, jc.TokenAudience)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.RefreshTokenValidityDuration.Duration > 0 {
		cfg.RefreshTokenValidityDuration = jc.RefreshTokenValidityDuration.Duration
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
