package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_ENV", "missing")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "release", cfg.Mode)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, int64(32768), cfg.ReadLimit)
	require.Equal(t, 54*time.Second, cfg.PingPeriod)
	require.Equal(t, 1000, cfg.MaxChatLen)
	require.Equal(t, 10, cfg.ChatRateLimit)
}
