package capture_test

import (
	"context"
	"testing"

	"github.com/jfdrake/fakeap/internal/adapters/capture"
	"github.com/jfdrake/fakeap/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSourceReplaysQueueThenTimesOut(t *testing.T) {
	src := &capture.FakeSource{Frames: [][]byte{{1, 2, 3}, {4, 5}}}

	wireLen, capLen, data, err := src.ReadPacketData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, wireLen)
	assert.Equal(t, 3, capLen)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, _, data, err = src.ReadPacketData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, data)

	_, _, _, err = src.ReadPacketData(context.Background())
	assert.ErrorIs(t, err, ports.ErrTimeout)
}

func TestFakeSourceRespectsCancelledContext(t *testing.T) {
	src := &capture.FakeSource{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := src.ReadPacketData(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
