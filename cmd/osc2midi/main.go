package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danmuck/osc2midi/internal/bridge"
	"github.com/danmuck/osc2midi/internal/config"
	"github.com/danmuck/osc2midi/internal/logging"
	"github.com/danmuck/osc2midi/internal/midiio"
)

const version = "1.0.0"

func usage() {
	fmt.Fprint(os.Stderr, `Usage: osc2midi [flags] "Virtual Port Name" host_ip host_port
Example:
	osc2midi "Osc MIDI Bridge" 127.0.0.1 8000

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "osc2midi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to a TOML config file")
		cable       = flag.Int("cable", -1, "cable number 0-15 (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("osc2midi %s\n", version)
		return nil
	}

	cfg, err := loadConfig(*configPath, *cable, flag.Args())
	if err != nil {
		return err
	}

	log := logging.Configure(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		log = log.Level(lvl)
	}

	peer, err := cfg.PeerAddr()
	if err != nil {
		return err
	}

	port, err := midiio.Open(cfg.Name)
	if err != nil {
		return err
	}
	defer port.Close()

	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return fmt.Errorf("udp bind: %w", err)
	}
	defer conn.Close()

	midiIn := make(chan []byte, 64)
	err = port.Listen(func(msg []byte) {
		cp := make([]byte, len(msg))
		copy(cp, msg)
		select {
		case midiIn <- cp:
		default:
			log.Warn().Int("len", len(msg)).Msg("midi input dropped, bridge backlogged")
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("name", cfg.Name).
		Str("peer", peer.String()).
		Int("cable", cfg.Cable).
		Msg("bridge starting")

	b := bridge.New(bridge.Config{
		Conn:    conn,
		Peer:    peer,
		MidiIn:  midiIn,
		MidiOut: port,
		Name:    cfg.Name,
		Cable:   cfg.Cable,
		Log:     log,
	})
	return b.Run(ctx)
}

// loadConfig layers the positional arguments and flag overrides on top
// of the config file (or the defaults when no file is given).
func loadConfig(path string, cable int, args []string) (config.Bridge, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Bridge{}, err
		}
		cfg = loaded
	}

	switch len(args) {
	case 0:
		if path == "" {
			usage()
			return config.Bridge{}, fmt.Errorf("missing arguments")
		}
	case 3:
		cfg.Name = args[0]
		cfg.PeerHost = args[1]
		port, err := strconv.Atoi(args[2])
		if err != nil {
			return config.Bridge{}, fmt.Errorf("failed parsing host_port argument %q", args[2])
		}
		cfg.PeerPort = port
	default:
		usage()
		return config.Bridge{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	if cable >= 0 {
		cfg.Cable = cable
	}
	if err := cfg.Validate(); err != nil {
		return config.Bridge{}, err
	}
	return cfg, nil
}
