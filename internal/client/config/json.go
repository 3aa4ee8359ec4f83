package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
)

type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	PushEndpointURL     string         `json:"push_endpoint_url"`
	DatabasePath        string         `json:"database_path"`
	HandshakeTimeout    timex.Duration `json:"handshake_timeout"`
	HistoryPollInterval timex.Duration `json:"history_poll_interval"`
	LogLevel            string         `json:"log_level"`
}

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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.PushEndpointURL != "" {
		cfg.PushEndpointURL = jc.PushEndpointURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.HandshakeTimeout.Duration > 0 {
		cfg.HandshakeTimeout = jc.HandshakeTimeout.Duration
	}
	if jc.HistoryPollInterval.Duration > 0 {
		cfg.HistoryPollInterval = jc.HistoryPollInterval.Duration
	}

	return nil
}
