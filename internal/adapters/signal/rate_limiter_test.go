package signal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChatRateLimiter_Allow(t *testing.T) {
	rl := NewChatRateLimiter(3, time.Minute)

	require.True(t, rl.Allow("c1"))
	require.True(t, rl.Allow("c1"))
	require.True(t, rl.Allow("c1"))
	require.False(t, rl.Allow("c1"))

	// Other sessions have their own window.
	require.True(t, rl.Allow("c2"))
}

func TestChatRateLimiter_WindowSlides(t *testing.T) {
	rl := NewChatRateLimiter(1, 30*time.Millisecond)

	require.True(t, rl.Allow("c1"))
	require.False(t, rl.Allow("c1"))

	time.Sleep(40 * time.Millisecond)
	require.True(t, rl.Allow("c1"))
}

func TestChatRateLimiter_Forget(t *testing.T) {
	rl := NewChatRateLimiter(1, time.Minute)

	require.True(t, rl.Allow("c1"))
	require.False(t, rl.Allow("c1"))

	rl.Forget("c1")
	require.True(t, rl.Allow("c1"))
}
