// Command fakeap emulates a single-station 802.11 access point on a
// monitor-mode interface: it answers probe, authentication and
// association requests, optionally beacons, and then gets out of the
// way once the station starts sending data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jfdrake/fakeap/internal/adapters/capture"
	"github.com/jfdrake/fakeap/internal/adapters/channelsetter"
	"github.com/jfdrake/fakeap/internal/config"
	"github.com/jfdrake/fakeap/internal/core/beacon"
	"github.com/jfdrake/fakeap/internal/core/dispatch"
	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/engine"
	"github.com/jfdrake/fakeap/internal/core/util"
)

const initialSequence = 1337

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if err := run(os.Args[1:], log); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string, log *slog.Logger) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if cfg.Debug {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	bssid, err := resolveBSSID(cfg)
	if err != nil {
		return err
	}

	apCfg := &domain.Config{
		SSID:          []byte(cfg.SSID),
		BSSID:         bssid,
		Channel:       cfg.Channel,
		BeaconEnabled: cfg.BeaconEnabled,
		Interface:     cfg.Interface,
	}
	log.Info("starting fake AP",
		"interface", cfg.Interface,
		"ssid", util.FormatSSID(apCfg.SSID),
		"bssid", util.FormatMAC(bssid),
		"channel", cfg.Channel,
		"beacon", cfg.BeaconEnabled,
	)

	cs := channelsetter.New(channelsetter.SystemCommandExecutor{})
	if err := cs.SetChannel(cfg.Interface, cfg.Channel); err != nil {
		return fmt.Errorf("setting channel: %w", err)
	}

	src, err := capture.OpenLive(cfg.Interface, 2048, 25*time.Millisecond)
	if err != nil {
		return fmt.Errorf("opening capture: %w", err)
	}
	defer src.Close()

	tx, err := openInjectionTransport(cfg.Interface)
	if err != nil {
		return fmt.Errorf("opening injection transport: %w", err)
	}
	defer tx.Close()

	seq := util.NewSequenceCounter(initialSequence)
	d := dispatch.New(apCfg, tx, log, initialSequence)
	sched := beacon.New(apCfg, tx, seq, log)
	eng := engine.New(src, d, sched, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return eng.Run(ctx)
}

// resolveBSSID returns the user-supplied BSSID override, or the
// interface's own hardware address if none was given.
func resolveBSSID(cfg *config.Config) (domain.MAC, error) {
	if cfg.BSSIDOverride != "" {
		hw, err := net.ParseMAC(cfg.BSSIDOverride)
		if err != nil {
			return domain.MAC{}, fmt.Errorf("parsing -m BSSID: %w", err)
		}
		return macFromHardwareAddr(hw)
	}

	ifi, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return domain.MAC{}, fmt.Errorf("looking up interface %s: %w", cfg.Interface, err)
	}
	return macFromHardwareAddr(ifi.HardwareAddr)
}

func macFromHardwareAddr(hw net.HardwareAddr) (domain.MAC, error) {
	if len(hw) != domain.MACLen {
		return domain.MAC{}, fmt.Errorf("expected a %d-byte MAC address, got %d bytes", domain.MACLen, len(hw))
	}
	var m domain.MAC
	copy(m[:], hw)
	return m, nil
}
