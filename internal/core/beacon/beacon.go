// Package beacon implements the periodic beacon component (F): on a
// fixed cadence, independent of any station's handshake state, build and
// inject a fresh beacon frame.
package beacon

import (
	"log/slog"
	"time"

	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/frame"
	"github.com/jfdrake/fakeap/internal/core/ports"
	"github.com/jfdrake/fakeap/internal/core/util"
)

// Scheduler sends a beacon every domain.BeaconPeriod. It is driven by the
// engine's poll loop rather than its own timer goroutine, so Tick must be
// called frequently -- at least once per domain.PollTimeout.
type Scheduler struct {
	cfg    *domain.Config
	inject ports.InjectionTransport
	seq    *util.SequenceCounter
	log    *slog.Logger
	last   time.Time
}

// New builds a Scheduler that shares the dispatcher's sequence counter,
// so beacon and response sequence numbers interleave the way a single
// real radio's TX queue would.
func New(cfg *domain.Config, inject ports.InjectionTransport, seq *util.SequenceCounter, log *slog.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, inject: inject, seq: seq, log: log}
}

// Tick does nothing unless cfg.BeaconEnabled is set. Otherwise it sends a
// beacon if domain.BeaconPeriod has elapsed since the last one (or if none
// has been sent yet). Injection failures are logged and do not stop the
// engine -- a dropped beacon is not fatal.
func (s *Scheduler) Tick(now time.Time) {
	if !s.cfg.BeaconEnabled {
		return
	}
	if !s.last.IsZero() && now.Sub(s.last) < domain.BeaconPeriod {
		return
	}
	buf := frame.Beacon(s.cfg, s.seq.Next())
	if err := s.inject.Inject(buf); err != nil {
		s.log.Warn("failed to send beacon", "error", err)
		return
	}
	s.last = now
}
