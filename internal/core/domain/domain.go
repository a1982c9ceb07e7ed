// Package domain holds the plain data types shared across the fake-AP
// core: the immutable startup configuration and the small set of runtime
// constants the rest of the packages key off of.
package domain

import "time"

// MACLen is the length in bytes of an 802.11 hardware address.
const MACLen = 6

// Broadcast is the all-ones link-layer destination/BSSID.
var Broadcast = [MACLen]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// MAC is a fixed-size hardware address, used instead of net.HardwareAddr so
// frame headers can be copied and compared by value.
type MAC [MACLen]byte

// Equal reports whether two MACs are byte-identical.
func (m MAC) Equal(o MAC) bool {
	return m == o
}

// IsBroadcast reports whether m is the all-ones address.
func (m MAC) IsBroadcast() bool {
	return m == MAC(Broadcast)
}

// Config is the immutable configuration of one fake AP instance, built
// once at startup from CLI flags and never mutated afterward.
type Config struct {
	// SSID is the network name advertised in beacons/probe responses,
	// 0..31 opaque bytes (truncated by config.Load).
	SSID []byte
	// BSSID is used as both source address and BSSID on every emitted
	// frame.
	BSSID MAC
	// Channel is informational (DS-Parameter-Set IE) and used once at
	// startup to tune the radio. Must be in [1, 12].
	Channel int
	// BeaconEnabled turns on the periodic beacon timer.
	BeaconEnabled bool
	// Interface is the monitor-mode interface name to bind to.
	Interface string
}

// Default timing constants, named after the quantities in the
// specification rather than magic numbers sprinkled through the code.
const (
	// RetransmitInterval is the minimum spacing between resends of the
	// cached response (50ms, BEACON_INTERVAL * 100_000ns).
	RetransmitInterval = 50 * time.Millisecond
	// BeaconPeriod is the cadence of the periodic beacon (500ms).
	BeaconPeriod = 500 * time.Millisecond
	// PollTimeout bounds how long a single capture-source poll may block.
	PollTimeout = 25 * time.Millisecond
)
