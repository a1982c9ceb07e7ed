package retransmit_test

import (
	"testing"
	"time"

	"github.com/jfdrake/fakeap/internal/core/retransmit"
	"github.com/jfdrake/fakeap/internal/core/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() []byte {
	buf := wire.EmitRadioTap(nil, wire.RadioTapRate2Mbps)
	return wire.EmitDot11(buf, wire.TypeManagement, wire.SubtypeAuth, [6]byte{1}, [6]byte{2}, [6]byte{2}, 7)
}

func TestEmptyCacheNeverResends(t *testing.T) {
	var c retransmit.Cache
	assert.True(t, c.Empty())
	assert.False(t, c.ShouldResend(time.Now()))
}

func TestStoreSetsRetryBit(t *testing.T) {
	var c retransmit.Cache
	frame := sampleFrame()
	c.Store(frame)
	require.False(t, c.Empty())

	h, _, err := wire.ParseDot11(frame[9:])
	require.NoError(t, err)
	assert.False(t, h.Retry(), "original frame must be untouched")

	h2, _, err := wire.ParseDot11(c.Bytes()[9:])
	require.NoError(t, err)
	assert.True(t, h2.Retry())
}

func TestFirstResendIsImmediate(t *testing.T) {
	var c retransmit.Cache
	c.Store(sampleFrame())
	assert.True(t, c.ShouldResend(time.Now()))
}

func TestResendIsRateLimited(t *testing.T) {
	var c retransmit.Cache
	c.Store(sampleFrame())
	now := time.Now()
	c.MarkResent(now)

	assert.False(t, c.ShouldResend(now.Add(10*time.Millisecond)))
	assert.True(t, c.ShouldResend(now.Add(60*time.Millisecond)))
}

func TestStoreBetweenRetriesDoesNotResetRateLimit(t *testing.T) {
	var c retransmit.Cache
	c.Store(sampleFrame())

	t0 := time.Now()
	c.MarkResent(t0)

	// A new response is stored for a later request in the same session
	// (e.g. an auth response after a probe response was resent).
	c.Store(sampleFrame())

	// 15ms after the last real resend: still inside the 50ms window, even
	// though the cache now holds a freshly stored buffer.
	assert.False(t, c.ShouldResend(t0.Add(15*time.Millisecond)))
	assert.True(t, c.ShouldResend(t0.Add(60*time.Millisecond)))
}

func TestClearEmptiesCache(t *testing.T) {
	var c retransmit.Cache
	c.Store(sampleFrame())
	c.Clear()
	assert.True(t, c.Empty())
	assert.False(t, c.ShouldResend(time.Now()))
}
