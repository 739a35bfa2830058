package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom("r1", "Test", "Alice")
	require.NoError(t, err)
	require.Equal(t, RoomID("r1"), room.ID)
	require.Equal(t, RoomName("Test"), room.Name)
	require.Equal(t, "Alice", room.CreatorName)
	require.False(t, room.CreatedAt.IsZero())
}

func TestNewRoom_MissingFields(t *testing.T) {
	_, err := NewRoom("", "Test", "Alice")
	require.ErrorIs(t, err, ErrInvalidRoomInfo)

	_, err = NewRoom("r1", "", "Alice")
	require.ErrorIs(t, err, ErrInvalidRoomInfo)
}

func TestNewRoom_NameTooLong(t *testing.T) {
	longName := RoomName(strings.Repeat("x", MaxRoomNameLen+1))
	_, err := NewRoom("r1", longName, "Alice")
	require.ErrorIs(t, err, ErrRoomNameTooLong)

	// Exactly at the limit is fine.
	_, err = NewRoom("r1", RoomName(strings.Repeat("x", MaxRoomNameLen)), "Alice")
	require.NoError(t, err)
}

func TestNewRoom_NameLimitCountsCharacters(t *testing.T) {
	// Fifty multibyte characters are 150 bytes but still within the
	// fifty-character limit.
	name := RoomName(strings.Repeat("あ", MaxRoomNameLen))
	_, err := NewRoom("r1", name, "Alice")
	require.NoError(t, err)

	_, err = NewRoom("r1", name+"あ", "Alice")
	require.ErrorIs(t, err, ErrRoomNameTooLong)
}
