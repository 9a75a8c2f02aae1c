package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validBridge() Bridge {
	cfg := Default()
	cfg.PeerHost = "127.0.0.1"
	cfg.PeerPort = 8000
	return cfg
}

func TestValidateAccepts(t *testing.T) {
	if err := validBridge().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Bridge)
	}{
		{"empty name", func(c *Bridge) { c.Name = " " }},
		{"empty host", func(c *Bridge) { c.PeerHost = "" }},
		{"port zero", func(c *Bridge) { c.PeerPort = 0 }},
		{"port overflow", func(c *Bridge) { c.PeerPort = 70000 }},
		{"cable negative", func(c *Bridge) { c.Cable = -1 }},
		{"cable overflow", func(c *Bridge) { c.Cable = 16 }},
		{"bad log level", func(c *Bridge) { c.LogLevel = "loud" }},
	}
	for _, tc := range cases {
		cfg := validBridge()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadTomlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.toml")
	body := `
name = "Osc MIDI Bridge"
peer_host = "127.0.0.1"
peer_port = 8000
cable = 3
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "Osc MIDI Bridge" || cfg.PeerPort != 8000 || cfg.Cable != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPeerAddr(t *testing.T) {
	cfg := validBridge()
	addr, err := cfg.PeerAddr()
	if err != nil {
		t.Fatalf("resolve peer: %v", err)
	}
	if addr.Port != 8000 || addr.IP.String() != "127.0.0.1" {
		t.Fatalf("unexpected peer addr: %v", addr)
	}

	cfg.PeerHost = "999.999.999.999"
	if _, err := cfg.PeerAddr(); err == nil {
		t.Fatalf("expected resolve error for bogus address")
	}
}
