// Package retransmit implements the single-slot retransmission cache
// (component E): the most recent response frame this AP sent, kept
// around so a retried request can be answered with the same bytes --
// Retry bit set -- instead of building a fresh reply.
package retransmit

import (
	"time"

	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/util"
	"github.com/jfdrake/fakeap/internal/core/wire"
)

// Cache holds the last response frame sent to the station currently in
// the handshake, plus the rate-limiting bookkeeping for resends. It is
// not safe for concurrent use.
type Cache struct {
	buf            []byte
	lastResentAt   time.Time
	haveLastResent bool
}

// Store copies frame into the cache and flips its Retry bit in place, so
// the stored copy is ready to be replayed verbatim on the next retry.
// The original frame the caller just transmitted is left untouched. The
// resend rate-limit clock is not reset here -- it tracks the last actual
// resend across the whole session, independent of which response is
// currently cached.
func (c *Cache) Store(frame []byte) {
	c.buf = append(c.buf[:0], frame...)
	// SetRetryFlag only fails on a malformed radiotap header, which
	// cannot happen here: frame was built by this process.
	_ = wire.SetRetryFlag(c.buf)
}

// Empty reports whether there is nothing cached to resend.
func (c *Cache) Empty() bool {
	return len(c.buf) == 0
}

// Clear discards the cached response. Called when the session advances
// past the point where a retry could still be answered from it.
func (c *Cache) Clear() {
	c.buf = nil
	c.haveLastResent = false
}

// ShouldResend reports whether a retried request arriving at now should
// be answered from the cache: there must be something cached, and -- if
// we have resent before -- more than domain.RetransmitInterval must have
// elapsed since the last resend.
func (c *Cache) ShouldResend(now time.Time) bool {
	if c.Empty() {
		return false
	}
	if !c.haveLastResent {
		return true
	}
	sec, nsec := util.TimespecDiff(now, c.lastResentAt)
	return time.Duration(sec)*time.Second+time.Duration(nsec) > domain.RetransmitInterval
}

// MarkResent records that the cached frame was just handed to the
// injection transport, starting the rate-limit window over again.
func (c *Cache) MarkResent(now time.Time) {
	c.lastResentAt = now
	c.haveLastResent = true
}

// Bytes returns the cached frame, Retry bit already set. The caller must
// not retain or mutate the returned slice across the next Store.
func (c *Cache) Bytes() []byte {
	return c.buf
}
