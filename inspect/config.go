package inspect

import (
	"errors"
	"strings"
)

const (
	// DefaultAddress is the default address for the inspection server.
	DefaultAddress = "127.0.0.1:8686"
	// DefaultPrefix is the default path prefix of all endpoints.
	DefaultPrefix = "/debug/config"
)

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrInvalidPrefix is returned when the prefix does not start with a slash.
	ErrInvalidPrefix = errors.New("prefix must start with /")
	// ErrListenFailed is returned when the server fails to listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrNilConfiguration is returned when no configuration is given.
	ErrNilConfiguration = errors.New("configuration must not be nil")
)

// Config holds the configuration for the inspection server.
type Config struct {
	Address string `config:"address"`
	Prefix  string `config:"prefix"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = DefaultAddress
		changed = true
	}

	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
		changed = true
	}

	c.Prefix = strings.TrimSuffix(c.Prefix, "/")

	return changed
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.Prefix != "" && !strings.HasPrefix(c.Prefix, "/") {
		return ErrInvalidPrefix
	}

	return nil
}

// Option defines a function type for configuring the inspection server.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithPrefix sets the path prefix of all endpoints.
func WithPrefix(prefix string) Option {
	return func(cfg *Config) {
		cfg.Prefix = prefix
	}
}
