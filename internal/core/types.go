package core

import (
	"time"

	"github.com/dkeye/Duel/internal/domain"
)

// Frame is a raw outbound payload, already serialized.
type Frame []byte

// SessionID is the opaque per-connection handle minted by the transport
// adapter. It lives exactly as long as the connection and is never reused.
type SessionID string

// ParticipationState tracks whether a live connection is committed to a room.
type ParticipationState string

const (
	// StateAbsent means the handle was never registered or is already removed.
	StateAbsent ParticipationState = ""
	StateOnline ParticipationState = "online"
	StateInRoom ParticipationState = "in_room"
)

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// RoomSnapshot is a read-only copy of a room's full state, safe to hand
// out of the store.
type RoomSnapshot struct {
	Room         domain.Room
	CreatorSID   SessionID
	Status       domain.RoomStatus
	Participants []SessionID
	Names        map[SessionID]string
}

// RoomSummary is the publicly listable view of a room still waiting for
// its second participant.
type RoomSummary struct {
	RoomID      domain.RoomID     `json:"roomId"`
	RoomName    domain.RoomName   `json:"roomName"`
	RoomCreator string            `json:"roomCreator"`
	CreatedAt   time.Time         `json:"createdAt"`
	CreatorSID  SessionID         `json:"creatorHandle"`
	Status      domain.RoomStatus `json:"status"`
}
