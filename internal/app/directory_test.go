package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Duel/internal/core"
	"github.com/dkeye/Duel/internal/domain"
)

func snapFor(id domain.RoomID, status domain.RoomStatus, creator core.SessionID) core.RoomSnapshot {
	return core.RoomSnapshot{
		Room: domain.Room{
			ID:          id,
			Name:        domain.RoomName("room " + id),
			CreatorName: "host of " + string(id),
			CreatedAt:   time.Now(),
		},
		CreatorSID:   creator,
		Status:       status,
		Participants: []core.SessionID{creator},
	}
}

func TestProject_FiltersStartedRooms(t *testing.T) {
	rooms := []core.RoomSnapshot{
		snapFor("r1", domain.StatusWaiting, "c1"),
		snapFor("r2", domain.StatusInProgress, "c2"),
		snapFor("r3", domain.StatusWaiting, "c3"),
	}

	dir := Project(rooms)
	require.Len(t, dir, 2)
	for _, s := range dir {
		require.Equal(t, domain.StatusWaiting, s.Status)
	}
}

func TestProject_PreservesOrderAndFields(t *testing.T) {
	rooms := []core.RoomSnapshot{
		snapFor("r1", domain.StatusWaiting, "c1"),
		snapFor("r2", domain.StatusWaiting, "c2"),
	}

	dir := Project(rooms)
	require.Equal(t, domain.RoomID("r1"), dir[0].RoomID)
	require.Equal(t, domain.RoomID("r2"), dir[1].RoomID)
	require.Equal(t, domain.RoomName("room r1"), dir[0].RoomName)
	require.Equal(t, "host of r1", dir[0].RoomCreator)
	require.Equal(t, core.SessionID("c1"), dir[0].CreatorSID)
	require.Equal(t, rooms[0].Room.CreatedAt, dir[0].CreatedAt)

	// Same input, same output.
	require.Equal(t, dir, Project(rooms))
}

func TestProject_Empty(t *testing.T) {
	require.Empty(t, Project(nil))
	require.Empty(t, Project([]core.RoomSnapshot{snapFor("r1", domain.StatusInProgress, "c1")}))
}

func TestStoreDirectoryRoundTrip(t *testing.T) {
	_, store := newTestStore(t, "c1", "c2", "c3")
	_, err := store.CreateRoom("c1", "r1", "First", "Alice")
	require.NoError(t, err)
	_, err = store.CreateRoom("c2", "r2", "Second", "Bob")
	require.NoError(t, err)

	dir := Project(store.Snapshots())
	require.Len(t, dir, 2)
	require.Equal(t, domain.RoomID("r1"), dir[0].RoomID)

	// Filling r1 hides it from the directory.
	_, err = store.JoinRoom("c3", "r1", "Carol")
	require.NoError(t, err)

	dir = Project(store.Snapshots())
	require.Len(t, dir, 1)
	require.Equal(t, domain.RoomID("r2"), dir[0].RoomID)
}
