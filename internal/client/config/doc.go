// Package config loads runtime configuration for the chat console client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string   host:port of the gRPC API
//	-w string   push endpoint URL (ws:// or wss://)
//	-f string   local database file
//	-k int      push handshake timeout (seconds)
//	-i int      history poll interval when push is down (seconds)
//	-l string   log level for stderr output
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "push_endpoint_url": "ws://127.0.0.1:8080/ws",
//	  "database_path": "gophchat.db",
//	  "handshake_timeout": "10s",
//	  "history_poll_interval": "3s",
//	  "log_level": "warn"
//	}
package config
