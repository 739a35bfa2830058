package core

import "github.com/dkeye/Duel/internal/domain"

// Wire event names. Inbound frames carry the name in the envelope's
// "type" field; outbound frames are wrapped the same way by the adapter.
const (
	// inbound
	EvCreateRoom    = "createRoom"
	EvJoinRoom      = "joinRoom"
	EvLeaveRoom     = "leaveRoom"
	EvClientMessage = "clientMessage"

	// outbound
	EvRoomsList         = "roomsList"
	EvRoomCreated       = "roomCreated"
	EvRoomJoined        = "roomJoined"
	EvRoomError         = "roomError"
	EvRoomStatusChanged = "roomStatusChanged"
	EvOpponentLeft      = "opponentLeft"
	EvUserCount         = "userCount"
	EvServerResponse    = "serverResponse"
)

type CreateRoomPayload struct {
	RoomID      string `json:"roomId"`
	RoomName    string `json:"roomName"`
	RoomCreator string `json:"roomCreator"`
}

type JoinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type LeaveRoomPayload struct {
	RoomID string `json:"roomId"`
}

type ChatPayload struct {
	Message string `json:"message" validate:"required"`
}

type RoomCreatedPayload struct {
	RoomID      domain.RoomID   `json:"roomId"`
	RoomName    domain.RoomName `json:"roomName"`
	RoomCreator string          `json:"roomCreator"`
	IsHost      bool            `json:"isHost"`
}

type RoomJoinedPayload struct {
	RoomID       domain.RoomID   `json:"roomId"`
	RoomName     domain.RoomName `json:"roomName"`
	IsHost       bool            `json:"isHost"`
	Opponent     SessionID       `json:"opponent"`
	OpponentName string          `json:"opponentName"`
	PlayerName   string          `json:"playerName"`
}

type RoomStatusChangedPayload struct {
	RoomID       domain.RoomID     `json:"roomId"`
	Status       domain.RoomStatus `json:"status"`
	OpponentName string            `json:"opponentName"`
}

type RoomErrorPayload struct {
	Message string `json:"message"`
}

type OpponentLeftPayload struct {
	RoomID domain.RoomID `json:"roomId"`
}

type ServerResponsePayload struct {
	Message string `json:"message"`
}
