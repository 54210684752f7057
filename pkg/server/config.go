package server

import (
	"log/slog"
	"time"

	"github.com/gomorph/gomorph/pkg/component"
	"github.com/gomorph/gomorph/pkg/snapshot"
)

// Config configures the demo server.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Snapshots stores named renderings. Defaults to an in-memory store.
	Snapshots snapshot.Store

	// Components is an optional component registry passed to each
	// session's reconciler.
	Components *component.Registry

	// WriteTimeout bounds websocket writes (default 10s).
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		Logger:          slog.Default(),
		Snapshots:       snapshot.NewMemoryStore(),
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
	if c.Snapshots == nil {
		c.Snapshots = defaults.Snapshots
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
}
