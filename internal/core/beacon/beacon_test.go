package beacon_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jfdrake/fakeap/internal/core/beacon"
	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInjector struct {
	count int
	err   error
}

func (r *recordingInjector) Inject(frame []byte) error {
	if r.err != nil {
		return r.err
	}
	r.count++
	return nil
}
func (r *recordingInjector) Close() error { return nil }

func testCfg() *domain.Config {
	return &domain.Config{SSID: []byte("TestNet"), BSSID: domain.MAC{1, 2, 3, 4, 5, 6}, Channel: 1, BeaconEnabled: true}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirstTickAlwaysSends(t *testing.T) {
	inj := &recordingInjector{}
	s := beacon.New(testCfg(), inj, util.NewSequenceCounter(1337), testLogger())

	s.Tick(time.Now())
	assert.Equal(t, 1, inj.count)
}

func TestTickRespectsPeriod(t *testing.T) {
	inj := &recordingInjector{}
	s := beacon.New(testCfg(), inj, util.NewSequenceCounter(1337), testLogger())

	start := time.Now()
	s.Tick(start)
	require.Equal(t, 1, inj.count)

	s.Tick(start.Add(100 * time.Millisecond))
	assert.Equal(t, 1, inj.count, "beacon period is 500ms, should not have fired yet")

	s.Tick(start.Add(600 * time.Millisecond))
	assert.Equal(t, 2, inj.count)
}

func TestFailedInjectionDoesNotAdvanceClock(t *testing.T) {
	inj := &recordingInjector{err: assert.AnError}
	s := beacon.New(testCfg(), inj, util.NewSequenceCounter(1337), testLogger())

	start := time.Now()
	s.Tick(start)
	s.Tick(start.Add(10 * time.Millisecond))
	assert.Equal(t, 0, inj.count)

	// Once injection recovers, the next tick sends right away: the failed
	// ticks above did not start a new beacon period.
	inj.err = nil
	s.Tick(start.Add(20 * time.Millisecond))
	assert.Equal(t, 1, inj.count)
}
