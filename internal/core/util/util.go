// Package util collects the small helpers shared by the core
// packages: MAC/SSID formatting for logging, the wrapping sequence
// counter, and monotonic-time arithmetic.
package util

import (
	"fmt"
	"time"

	"github.com/jfdrake/fakeap/internal/core/domain"
)

// FormatMAC renders a MAC as six lowercase colon-separated hex pairs.
func FormatMAC(m domain.MAC) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// FormatSSID renders an SSID for logging: the first 31 bytes at most, with
// no terminator appended.
// It is never used on the wire -- the raw SSID bytes go straight into the
// IE via wire.EmitIE.
func FormatSSID(ssid []byte) string {
	if len(ssid) > 31 {
		ssid = ssid[:31]
	}
	return string(ssid)
}

const seqMax = 4096

// SequenceCounter is a 12-bit, post-increment, wrap-at-4096 counter. It
// is not safe for concurrent use; the I/O engine that owns it is
// single-threaded by design.
type SequenceCounter struct {
	next uint16
}

// NewSequenceCounter returns a counter starting at the given value
// (the specification's initial value is 1337).
func NewSequenceCounter(start uint16) *SequenceCounter {
	return &SequenceCounter{next: start % seqMax}
}

// Next returns the current value and advances the counter, wrapping
// 4095 -> 0.
func (s *SequenceCounter) Next() uint16 {
	v := s.next
	s.next++
	if s.next >= seqMax {
		s.next = 0
	}
	return v
}

// TimespecDiff returns newer-older as a normalized (seconds, nanoseconds)
// pair with nanoseconds always in [0, 1e9), borrowing from seconds when
// the raw subtraction would otherwise go negative.
func TimespecDiff(newer, older time.Time) (sec int64, nsec int64) {
	d := newer.Sub(older)
	sec = int64(d / time.Second)
	nsec = int64(d % time.Second)
	if nsec < 0 {
		sec--
		nsec += int64(time.Second)
	}
	return sec, nsec
}
