package channelsetter_test

import (
	"errors"
	"testing"

	"github.com/jfdrake/fakeap/internal/adapters/channelsetter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	name string
	args []string
	out  []byte
	err  error
}

func (f *fakeExecutor) Execute(name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func TestSetChannelBuildsExpectedCommand(t *testing.T) {
	exec := &fakeExecutor{}
	s := channelsetter.New(exec)

	require.NoError(t, s.SetChannel("mon0", 6))
	assert.Equal(t, "iw", exec.name)
	assert.Equal(t, []string{"dev", "mon0", "set", "channel", "6"}, exec.args)
}

func TestSetChannelPropagatesError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("no such device"), out: []byte("nl80211 error")}
	s := channelsetter.New(exec)

	err := s.SetChannel("mon0", 6)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "no such device")
}
