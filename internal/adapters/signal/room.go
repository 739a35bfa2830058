package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/core"
)

func (ctl *Controller) handleCreateRoom(sid core.SessionID, conn core.SignalConnection, data []byte) {
	var p core.CreateRoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad createRoom payload")
		ctl.sendJSON(conn, core.EvRoomError, core.RoomErrorPayload{Message: "invalid message format"})
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.RoomID).Msg("createRoom")
	ctl.dispatch(func() []core.Effect { return ctl.Orch.OnCreateRoom(sid, p) })
}

func (ctl *Controller) handleJoinRoom(sid core.SessionID, conn core.SignalConnection, data []byte) {
	var p core.JoinRoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad joinRoom payload")
		ctl.sendJSON(conn, core.EvRoomError, core.RoomErrorPayload{Message: "invalid message format"})
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.RoomID).Msg("joinRoom")
	ctl.dispatch(func() []core.Effect { return ctl.Orch.OnJoinRoom(sid, p) })
}

func (ctl *Controller) handleLeaveRoom(sid core.SessionID, conn core.SignalConnection, data []byte) {
	var p core.LeaveRoomPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leaveRoom payload")
		ctl.sendJSON(conn, core.EvRoomError, core.RoomErrorPayload{Message: "invalid message format"})
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.RoomID).Msg("leaveRoom")
	ctl.dispatch(func() []core.Effect { return ctl.Orch.OnLeaveRoom(sid, p) })
}
