package engine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jfdrake/fakeap/internal/core/beacon"
	"github.com/jfdrake/fakeap/internal/core/dispatch"
	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/engine"
	"github.com/jfdrake/fakeap/internal/core/ports"
	"github.com/jfdrake/fakeap/internal/core/util"
	"github.com/jfdrake/fakeap/internal/core/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource replays a fixed queue of frames and then blocks (reporting
// ports.ErrTimeout on each subsequent poll) until its context is done.
type fakeSource struct {
	queue [][]byte
}

func (f *fakeSource) ReadPacketData(ctx context.Context) (int, int, []byte, error) {
	if len(f.queue) > 0 {
		next := f.queue[0]
		f.queue = f.queue[1:]
		return len(next), len(next), next, nil
	}
	select {
	case <-ctx.Done():
		return 0, 0, nil, context.Canceled
	case <-time.After(time.Millisecond):
		return 0, 0, nil, ports.ErrTimeout
	}
}

func (f *fakeSource) Close() error { return nil }

type recordingInjector struct {
	count int
}

func (r *recordingInjector) Inject(frame []byte) error { r.count++; return nil }
func (r *recordingInjector) Close() error              { return nil }

func testCfg() *domain.Config {
	return &domain.Config{SSID: []byte("TestNet"), BSSID: domain.MAC{1, 2, 3, 4, 5, 6}, Channel: 1, BeaconEnabled: true}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authReqFrame(bssid domain.MAC) []byte {
	sta := domain.MAC{9, 9, 9, 9, 9, 9}
	var buf []byte
	buf = wire.EmitRadioTap(buf, wire.RadioTapRate2Mbps)
	buf = wire.EmitDot11(buf, wire.TypeManagement, wire.SubtypeAuth, bssid, sta, bssid, 1)
	buf = wire.EmitAuthBody(buf, wire.AuthBody{Algorithm: 0, Sequence: 1, Status: 0})
	return buf
}

func TestEngineDispatchesQueuedFrameAndShutsDownOnCancel(t *testing.T) {
	cfg := testCfg()
	inj := &recordingInjector{}
	d := dispatch.New(cfg, inj, testLogger(), 1337)
	sched := beacon.New(cfg, inj, util.NewSequenceCounter(7000), testLogger())

	src := &fakeSource{queue: [][]byte{authReqFrame(cfg.BSSID)}}
	e := engine.New(src, d, sched, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := e.Run(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, inj.count, 1, "auth response (and likely a beacon) should have been injected")
}

func TestEngineStopsImmediatelyOnAlreadyCancelledContext(t *testing.T) {
	cfg := testCfg()
	inj := &recordingInjector{}
	d := dispatch.New(cfg, inj, testLogger(), 1337)
	sched := beacon.New(cfg, inj, util.NewSequenceCounter(7000), testLogger())

	src := &fakeSource{}
	e := engine.New(src, d, sched, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, inj.count)
}

func TestEnginePropagatesFatalCaptureError(t *testing.T) {
	cfg := testCfg()
	inj := &recordingInjector{}
	d := dispatch.New(cfg, inj, testLogger(), 1337)
	sched := beacon.New(cfg, inj, util.NewSequenceCounter(7000), testLogger())

	e := engine.New(fatalSource{}, d, sched, testLogger())
	err := e.Run(context.Background())
	assert.Error(t, err)
}

type fatalSource struct{}

func (fatalSource) ReadPacketData(ctx context.Context) (int, int, []byte, error) {
	return 0, 0, nil, assert.AnError
}
func (fatalSource) Close() error { return nil }
