package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Duel/internal/core"
)

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, core.StateAbsent, r.GetState("c1"))
	require.Equal(t, 0, r.Count())

	r.Register("c1")
	require.Equal(t, core.StateOnline, r.GetState("c1"))
	require.Equal(t, 1, r.Count())

	r.SetState("c1", core.StateInRoom)
	require.Equal(t, core.StateInRoom, r.GetState("c1"))

	r.Unregister("c1")
	require.Equal(t, core.StateAbsent, r.GetState("c1"))
	require.Equal(t, 0, r.Count())
}

func TestRegistry_SetStateUnknownHandle(t *testing.T) {
	r := NewRegistry()

	// Setting state for a never-registered handle must not create it.
	r.SetState("ghost", core.StateInRoom)
	require.Equal(t, core.StateAbsent, r.GetState("ghost"))
	require.Equal(t, 0, r.Count())
}

func TestRegistry_Count(t *testing.T) {
	r := NewRegistry()
	r.Register("c1")
	r.Register("c2")
	r.Register("c3")
	require.Equal(t, 3, r.Count())

	r.Unregister("c2")
	require.Equal(t, 2, r.Count())

	// Unregistering twice is harmless.
	r.Unregister("c2")
	require.Equal(t, 2, r.Count())
}
