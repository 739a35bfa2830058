package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/core"
)

// envelope is the wire framing for both directions: the event name in
// "type", the event payload in "data".
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type outEnvelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.cfg.WriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(ctl.cfg.WriteWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, sid core.SessionID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		ctl.drop(sid, c)
	}()

	c.conn.SetReadLimit(ctl.cfg.ReadLimit)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				}
				return
			}
			ctl.handleMessage(sid, c, data)
		}
	}
}

// handleMessage dispatches one inbound frame. A malformed or unknown
// frame is answered on the same connection and never takes the server
// down; the client is free to resubmit a corrected one.
func (ctl *Controller) handleMessage(sid core.SessionID, c core.SignalConnection, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendJSON(c, core.EvRoomError, core.RoomErrorPayload{Message: "invalid message format"})
		return
	}

	switch env.Type {
	case core.EvCreateRoom:
		ctl.handleCreateRoom(sid, c, env.Data)
	case core.EvJoinRoom:
		ctl.handleJoinRoom(sid, c, env.Data)
	case core.EvLeaveRoom:
		ctl.handleLeaveRoom(sid, c, env.Data)
	case core.EvClientMessage:
		ctl.handleChat(sid, c, env.Data)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown message")
		ctl.sendJSON(c, core.EvRoomError, core.RoomErrorPayload{Message: "unknown message type"})
	}
}

func (ctl *Controller) sendJSON(c core.SignalConnection, event string, payload any) {
	b, err := json.Marshal(outEnvelope{Type: event, Data: payload})
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}
