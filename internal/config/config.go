package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Bridge holds the startup parameters the core consumes as plain values.
// Everything is validated before any sequencer or socket is touched.
type Bridge struct {
	Name     string `toml:"name"`
	PeerHost string `toml:"peer_host"`
	PeerPort int    `toml:"peer_port"`
	Cable    int    `toml:"cable"`
	LogLevel string `toml:"log_level"`
}

// Default returns the bridge defaults applied before file or flag
// overrides.
func Default() Bridge {
	return Bridge{Name: "osc2midi", Cable: 0}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (Bridge, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Bridge{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter values the bridge must never start with.
func (c Bridge) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("config: port name required")
	}
	if strings.TrimSpace(c.PeerHost) == "" {
		return fmt.Errorf("config: peer host required")
	}
	if c.PeerPort < 1 || c.PeerPort > 65535 {
		return fmt.Errorf("config: peer port %d out of range 1-65535", c.PeerPort)
	}
	if c.Cable < 0 || c.Cable > 15 {
		return fmt.Errorf("config: cable %d out of range 0-15", c.Cable)
	}
	if c.LogLevel != "" {
		if !validLogLevel(c.LogLevel) {
			return fmt.Errorf("config: unknown log level %q", c.LogLevel)
		}
	}
	return nil
}

func validLogLevel(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off", "none":
		return true
	default:
		return false
	}
}

// PeerAddr resolves the configured peer to a UDP endpoint, preferring an
// IPv4 address when the host is a name.
func (c Bridge) PeerAddr() (*net.UDPAddr, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	hostport := net.JoinHostPort(strings.TrimSpace(c.PeerHost), strconv.Itoa(c.PeerPort))
	addr, err := net.ResolveUDPAddr("udp4", hostport)
	if err != nil {
		return nil, fmt.Errorf("config: resolve peer %q: %w", hostport, err)
	}
	return addr, nil
}
