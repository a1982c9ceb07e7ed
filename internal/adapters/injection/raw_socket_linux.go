//go:build linux

package injection

import (
	"fmt"
	"net"
	"syscall"
)

// htons converts a uint16 from host to network byte order.
func htons(v uint16) uint16 {
	return (v << 8) | (v >> 8)
}

// RawSocketTransport injects frames via an AF_PACKET SOCK_RAW socket
// bound to a monitor-mode interface. The kernel prepends nothing and
// expects the caller's buffer to already start with the radiotap header,
// exactly what internal/core/frame builds.
type RawSocketTransport struct {
	fd        int
	ifaceAddr syscall.SockaddrLinklayer
}

// NewRawSocketTransport opens a raw socket bound to iface.
func NewRawSocketTransport(iface string) (*RawSocketTransport, error) {
	ifi, err := net.InterfaceByName(iface)
	if err != nil {
		return nil, fmt.Errorf("injection: lookup %s: %w", iface, err)
	}

	fd, err := syscall.Socket(syscall.AF_PACKET, syscall.SOCK_RAW, int(htons(syscall.ETH_P_ALL)))
	if err != nil {
		return nil, fmt.Errorf("injection: socket: %w", err)
	}

	addr := syscall.SockaddrLinklayer{
		Protocol: htons(syscall.ETH_P_ALL),
		Ifindex:  ifi.Index,
	}
	if err := syscall.Bind(fd, &addr); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("injection: bind %s: %w", iface, err)
	}

	return &RawSocketTransport{fd: fd, ifaceAddr: addr}, nil
}

// Inject writes frame to the wire as-is.
func (t *RawSocketTransport) Inject(frame []byte) error {
	if err := syscall.Sendto(t.fd, frame, 0, &t.ifaceAddr); err != nil {
		return fmt.Errorf("injection: sendto: %w", err)
	}
	return nil
}

// Close releases the socket.
func (t *RawSocketTransport) Close() error {
	return syscall.Close(t.fd)
}
