package capture

import (
	"context"

	"github.com/jfdrake/fakeap/internal/core/ports"
)

// FakeSource replays a fixed queue of frames, reporting ports.ErrTimeout
// once it is drained. It exists so engine and integration tests can drive
// the dispatcher without a real radio.
type FakeSource struct {
	Frames [][]byte
}

// ReadPacketData returns the next queued frame, or ports.ErrTimeout if
// the queue is empty (or ctx is already done).
func (f *FakeSource) ReadPacketData(ctx context.Context) (int, int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, nil, err
	}
	if len(f.Frames) == 0 {
		return 0, 0, nil, ports.ErrTimeout
	}
	next := f.Frames[0]
	f.Frames = f.Frames[1:]
	return len(next), len(next), next, nil
}

// Close is a no-op.
func (f *FakeSource) Close() error { return nil }
