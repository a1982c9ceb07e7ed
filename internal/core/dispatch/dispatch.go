// Package dispatch implements the frame dispatcher (component D): the
// single decision point that turns one captured radiotap+802.11 buffer
// into at most one injected response, driving the session machine and
// retransmission cache as a side effect.
package dispatch

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/frame"
	"github.com/jfdrake/fakeap/internal/core/ports"
	"github.com/jfdrake/fakeap/internal/core/retransmit"
	"github.com/jfdrake/fakeap/internal/core/session"
	"github.com/jfdrake/fakeap/internal/core/util"
	"github.com/jfdrake/fakeap/internal/core/wire"
)

// Dispatcher owns every piece of per-station state the engine needs to
// answer frames: the handshake machine, the retransmission cache and the
// shared sequence counter, plus the static AP configuration and the
// transport frames go out on.
type Dispatcher struct {
	cfg     *domain.Config
	session *session.Machine
	cache   *retransmit.Cache
	seq     *util.SequenceCounter
	inject  ports.InjectionTransport
	log     *slog.Logger
}

// New builds a Dispatcher for a single monitored station. seqStart is the
// sequence counter's initial value (1337 per the reference behavior).
func New(cfg *domain.Config, inject ports.InjectionTransport, log *slog.Logger, seqStart uint16) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		session: session.New(),
		cache:   &retransmit.Cache{},
		seq:     util.NewSequenceCounter(seqStart),
		inject:  inject,
		log:     log,
	}
}

// State exposes the current handshake phase, mainly for tests and logging.
func (d *Dispatcher) State() session.State {
	return d.session.State()
}

// Dispatch handles one captured frame. now is the capture timestamp used
// for the retransmission rate limit; wireLen/capLen/data come straight
// from ports.CaptureSource.ReadPacketData.
func (d *Dispatcher) Dispatch(now time.Time, wireLen, capLen int, data []byte) error {
	if capLen < wireLen {
		d.log.Warn("truncated capture", "wire_len", wireLen, "cap_len", capLen)
	}

	_, body, err := wire.ParseRadioTap(data)
	if err != nil {
		d.log.Debug("dropping frame with malformed radiotap header", "error", err)
		return nil
	}

	h, rest, err := wire.ParseDot11(body)
	if err != nil {
		d.log.Debug("dropping frame with malformed 802.11 header", "error", err)
		return nil
	}

	if h.Addr2.Equal(d.cfg.BSSID) {
		// Our own transmission looped back by the capture source.
		return nil
	}

	if h.Retry() {
		return d.handleRetry(now)
	}

	if h.Type == wire.TypeManagement && h.Subtype == wire.SubtypeProbeReq {
		return d.handleProbeRequest(h, rest, now)
	}

	if !h.Addr1.Equal(d.cfg.BSSID) {
		// Not a probe request and not addressed to us: nothing to do.
		return nil
	}

	switch {
	case h.Type == wire.TypeManagement && h.Subtype == wire.SubtypeAuth:
		return d.handleAuth(h, rest, now)
	case h.Type == wire.TypeManagement && h.Subtype == wire.SubtypeAssocReq:
		return d.handleAssoc(h, rest, now)
	case h.Type == wire.TypeData:
		d.handleData(h)
		return nil
	default:
		return nil
	}
}

func (d *Dispatcher) handleRetry(now time.Time) error {
	if !d.cache.ShouldResend(now) {
		return nil
	}
	if err := d.inject.Inject(d.cache.Bytes()); err != nil {
		d.log.Warn("failed to resend cached response", "error", err)
		return nil
	}
	d.cache.MarkResent(now)
	d.log.Debug("resent cached response for retried request")
	return nil
}

func (d *Dispatcher) handleProbeRequest(h wire.Dot11Header, body []byte, now time.Time) error {
	ie, found := wire.FindIE(body, wire.IESSID)
	if !found {
		d.log.Warn("probe request with no SSID IE encountered", "src", util.FormatMAC(h.Addr2))
		return nil
	}

	unicast := h.Addr1.Equal(d.cfg.BSSID)
	broadcast := h.Addr1.IsBroadcast()
	if !unicast && !broadcast {
		return nil
	}

	wildcard := len(ie.Data) == 0
	matches := bytes.Equal(ie.Data, d.cfg.SSID)

	switch {
	case unicast && matches:
		// fall through to reply
	case broadcast && (wildcard || matches):
		// fall through to reply
	default:
		d.log.Debug("probe request for a different SSID, not replying",
			"src", util.FormatMAC(h.Addr2), "requested", util.FormatSSID(ie.Data))
		return nil
	}

	resp := frame.ProbeResponse(d.cfg, h.Addr2, d.seq.Next())
	d.cache.Store(resp)
	if unicast {
		d.session.OnUnicastProbeResponseSent()
	}
	if err := d.inject.Inject(resp); err != nil {
		d.log.Warn("failed to send probe response", "dst", util.FormatMAC(h.Addr2), "error", err)
		return nil
	}
	d.log.Info("sent probe response", "dst", util.FormatMAC(h.Addr2), "broadcast", broadcast)
	return nil
}

func (d *Dispatcher) handleAuth(h wire.Dot11Header, body []byte, now time.Time) error {
	auth, _, err := wire.ParseAuthBody(body)
	if err != nil {
		d.log.Warn("authentication request without parameters", "src", util.FormatMAC(h.Addr2))
		return nil
	}
	if auth.Sequence != 1 {
		d.log.Warn("unexpected authentication sequence number", "sequence", auth.Sequence)
	}

	resp := frame.AuthResponse(d.cfg, h.Addr2, d.seq.Next())
	d.cache.Store(resp)
	d.session.OnAuthResponseSent()
	if err := d.inject.Inject(resp); err != nil {
		d.log.Warn("failed to send authentication response", "dst", util.FormatMAC(h.Addr2), "error", err)
		return nil
	}
	d.log.Info("sent authentication response", "dst", util.FormatMAC(h.Addr2))
	return nil
}

func (d *Dispatcher) handleAssoc(h wire.Dot11Header, body []byte, now time.Time) error {
	if _, _, err := wire.ParseAssocReqBody(body); err != nil {
		d.log.Warn("association request without parameters", "src", util.FormatMAC(h.Addr2))
		return nil
	}

	resp := frame.AssocResponse(d.cfg, h.Addr2, d.seq.Next())
	d.cache.Store(resp)
	d.session.OnAssocResponseSent()
	if err := d.inject.Inject(resp); err != nil {
		d.log.Warn("failed to send association response", "dst", util.FormatMAC(h.Addr2), "error", err)
		return nil
	}
	d.log.Info("sent association response", "dst", util.FormatMAC(h.Addr2))
	return nil
}

func (d *Dispatcher) handleData(h wire.Dot11Header) {
	if d.session.OnDataFrame() {
		d.cache.Clear()
		d.log.Info("station established", "station", util.FormatMAC(h.Addr2))
	}
}
