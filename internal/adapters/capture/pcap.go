// Package capture provides ports.CaptureSource implementations: a real
// one backed by gopacket/pcap reading a monitor-mode interface, and an
// in-memory fake for tests.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/jfdrake/fakeap/internal/core/ports"
)

// PcapSource reads radiotap-framed 802.11 frames from a live monitor-mode
// interface via libpcap.
type PcapSource struct {
	handle *pcap.Handle
}

// OpenLive opens iface for reading. It does not put the interface into
// monitor mode; it fails unless the interface already delivers
// radiotap-framed 802.11 frames. snaplen should be
// large enough for a full management frame plus radiotap header (2048 is
// generous); readTimeout bounds how long a single ReadPacketData call
// may block the underlying pcap loop before yielding.
func OpenLive(iface string, snaplen int32, readTimeout time.Duration) (*PcapSource, error) {
	handle, err := pcap.OpenLive(iface, snaplen, true, readTimeout)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", iface, err)
	}
	if handle.LinkType() != layers.LinkTypeIEEE802_11Radio {
		handle.Close()
		return nil, fmt.Errorf("capture: %s is not in monitor mode (link type %s)", iface, handle.LinkType())
	}
	return &PcapSource{handle: handle}, nil
}

// ReadPacketData polls for one frame. The underlying pcap handle already
// has a short read timeout configured via OpenLive, so this blocks for at
// most that long; ctx cancellation is checked before the call only.
func (p *PcapSource) ReadPacketData(ctx context.Context) (int, int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, nil, err
	}
	data, ci, err := p.handle.ReadPacketData()
	if err != nil {
		if err == pcap.NextErrorTimeoutExpired {
			return 0, 0, nil, ports.ErrTimeout
		}
		return 0, 0, nil, fmt.Errorf("capture: read: %w", err)
	}
	return ci.Length, ci.CaptureLength, data, nil
}

// Close releases the pcap handle.
func (p *PcapSource) Close() error {
	p.handle.Close()
	return nil
}
