// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

const MaxRoomNameLen = 50

// Validation errors: the request itself is malformed.
var (
	ErrInvalidRoomInfo = errors.New("invalid room info")
	ErrRoomNameTooLong = errors.New("room name too long")
)

// Conflict errors: the request is well-formed but races with current state.
var (
	ErrAlreadyInRoom = errors.New("already in a room")
	ErrRoomIDInUse   = errors.New("room id in use")
	ErrRoomStarted   = errors.New("already started")
	ErrRoomFull      = errors.New("room full")
)

var ErrRoomNotFound = errors.New("room not found")

type (
	RoomID   string
	RoomName string
)

type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
)

// Room is the immutable meta of a matchmaking room. Membership and
// status live in the store, not here.
type Room struct {
	ID          RoomID
	Name        RoomName
	CreatorName string
	CreatedAt   time.Time
}

// NewRoom is a tiny helper to avoid ad-hoc struct literals in the store.
func NewRoom(id RoomID, name RoomName, creatorName string) (*Room, error) {
	if id == "" || name == "" {
		return nil, ErrInvalidRoomInfo
	}
	// Limit is in characters, not bytes.
	if utf8.RuneCountInString(string(name)) > MaxRoomNameLen {
		return nil, ErrRoomNameTooLong
	}
	return &Room{
		ID:          id,
		Name:        name,
		CreatorName: creatorName,
		CreatedAt:   time.Now(),
	}, nil
}
