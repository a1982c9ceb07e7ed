// Package config parses the command-line contract this tool has always
// had: a handful of flags plus one required positional SSID argument.
package config

import (
	"flag"
	"fmt"
)

// Config holds the fully-validated startup configuration for one fake AP
// instance.
type Config struct {
	Interface     string
	BSSIDOverride string // empty means "use the interface's hardware address"
	Channel       int
	BeaconEnabled bool
	SSID          string
	Debug         bool
}

// Load parses args (the command line without the program name) and
// validates the result. On a usage error it
// prints a message to stderr and returns a non-nil error; callers are
// expected to exit(1) rather than continue.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("fakeap", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: fakeap [-b] [-c channel] [-i interface] [-m bssid] [-d] <ssid>\n")
		fs.PrintDefaults()
	}

	cfg := &Config{}
	fs.BoolVar(&cfg.BeaconEnabled, "b", false, "send periodic beacons")
	fs.IntVar(&cfg.Channel, "c", 1, "802.11 channel (1-12)")
	fs.StringVar(&cfg.Interface, "i", "mon0", "monitor-mode interface to use")
	fs.StringVar(&cfg.BSSIDOverride, "m", "", "BSSID to advertise (default: interface hardware address)")
	fs.BoolVar(&cfg.Debug, "d", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Channel < 1 || cfg.Channel > 12 {
		return nil, fmt.Errorf("channel must be between 1 and 12, got %d", cfg.Channel)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one SSID argument, got %d", len(rest))
	}
	ssid := rest[0]
	if len(ssid) > maxSSIDLen {
		ssid = ssid[:maxSSIDLen]
	}
	cfg.SSID = ssid

	return cfg, nil
}

// maxSSIDLen mirrors the 32-byte g_ssid buffer's usable capacity (one byte
// reserved for the trailing NUL), so the positional argument is truncated
// the same way regardless of how long the caller's shell argument is.
const maxSSIDLen = 31
