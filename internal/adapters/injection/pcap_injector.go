//go:build !linux

package injection

import (
	"fmt"
	"time"

	"github.com/google/gopacket/pcap"
)

// PcapTransport injects frames via a libpcap handle opened in write mode.
// It is the fallback used on platforms without AF_PACKET support; Linux
// uses RawSocketTransport instead.
type PcapTransport struct {
	handle *pcap.Handle
}

// NewPcapTransport opens iface for packet injection.
func NewPcapTransport(iface string) (*PcapTransport, error) {
	handle, err := pcap.OpenLive(iface, 2048, true, 10*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("injection: open %s: %w", iface, err)
	}
	return &PcapTransport{handle: handle}, nil
}

// Inject writes frame to the wire as-is.
func (t *PcapTransport) Inject(frame []byte) error {
	if err := t.handle.WritePacketData(frame); err != nil {
		return fmt.Errorf("injection: write: %w", err)
	}
	return nil
}

// Close releases the pcap handle.
func (t *PcapTransport) Close() error {
	t.handle.Close()
	return nil
}
