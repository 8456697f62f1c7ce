// Package config loads gpufleet settings from an optional YAML file.
// Command-line flags override file values, which override defaults.
package config

import (
	"time"

	"gpufleet/internal/monitor"
)

// DefaultPort is the dashboard listen port.
const DefaultPort = 48109

// DefaultDialTimeout bounds the TCP connect when opening SSH sessions.
const DefaultDialTimeout = 10 * time.Second

// Config represents the complete .gpufleet.yaml configuration file.
type Config struct {
	// Hosts is the ordered list of hosts to poll. Order determines the
	// dashboard's display order.
	Hosts []string `yaml:"hosts" mapstructure:"hosts"`

	// Port the dashboard listens on.
	Port int `yaml:"port" mapstructure:"port"`

	// Interval between status polls per host.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Command is the status command run on every host.
	Command string `yaml:"command" mapstructure:"command"`

	// DialTimeout bounds SSH session establishment.
	DialTimeout time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`

	// Verbose enables per-poll debug logging.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// Default returns the built-in configuration: a single local host polled
// every five seconds.
func Default() *Config {
	return &Config{
		Hosts:       []string{"localhost"},
		Port:        DefaultPort,
		Interval:    monitor.DefaultInterval,
		Command:     monitor.DefaultCommand,
		DialTimeout: DefaultDialTimeout,
	}
}

// normalize fills zero values with defaults after a file load.
func (c *Config) normalize() {
	if len(c.Hosts) == 0 {
		c.Hosts = []string{"localhost"}
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Interval <= 0 {
		c.Interval = monitor.DefaultInterval
	}
	if c.Command == "" {
		c.Command = monitor.DefaultCommand
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
}
