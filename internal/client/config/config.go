package config

import "time"

// Config holds runtime settings for the console client.
type Config struct {
	ServerEndpointAddr  string
	PushEndpointURL     string
	DatabasePath        string
	HandshakeTimeout    time.Duration
	HistoryPollInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.PushEndpointURL = "ws://127.0.0.1:8080/ws"
	c.DatabasePath = "gophchat.db"
	c.HandshakeTimeout = 10 * time.Second
	c.HistoryPollInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the JSON file, then flags from args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
