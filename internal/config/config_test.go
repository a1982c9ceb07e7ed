package config_test

import (
	"testing"

	"github.com/jfdrake/fakeap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load([]string{"MyNetwork"})
	require.NoError(t, err)
	assert.Equal(t, "mon0", cfg.Interface)
	assert.Equal(t, 1, cfg.Channel)
	assert.False(t, cfg.BeaconEnabled)
	assert.Empty(t, cfg.BSSIDOverride)
	assert.Equal(t, "MyNetwork", cfg.SSID)
}

func TestAllFlags(t *testing.T) {
	cfg, err := config.Load([]string{"-b", "-c", "6", "-i", "wlan1mon", "-m", "02:00:00:00:00:01", "-d", "Attractive Nuisance"})
	require.NoError(t, err)
	assert.True(t, cfg.BeaconEnabled)
	assert.Equal(t, 6, cfg.Channel)
	assert.Equal(t, "wlan1mon", cfg.Interface)
	assert.Equal(t, "02:00:00:00:00:01", cfg.BSSIDOverride)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "Attractive Nuisance", cfg.SSID)
}

func TestChannelOutOfRangeRejected(t *testing.T) {
	_, err := config.Load([]string{"-c", "13", "Net"})
	assert.Error(t, err)

	_, err = config.Load([]string{"-c", "0", "Net"})
	assert.Error(t, err)
}

func TestMissingSSIDRejected(t *testing.T) {
	_, err := config.Load([]string{"-c", "6"})
	assert.Error(t, err)
}

func TestExtraArgsRejected(t *testing.T) {
	_, err := config.Load([]string{"Net", "extra"})
	assert.Error(t, err)
}

func TestSSIDTruncatedTo31Bytes(t *testing.T) {
	long := "ThisNetworkNameIsDefinitelyLongerThanThirtyOneBytes"
	cfg, err := config.Load([]string{long})
	require.NoError(t, err)
	assert.Len(t, cfg.SSID, 31)
	assert.Equal(t, long[:31], cfg.SSID)
}
