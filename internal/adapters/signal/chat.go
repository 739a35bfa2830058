package signal

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/core"
)

// handleChat relays a free-text message to every other connection. Chat
// has no state machine: length and rate checks here, then fan out.
func (ctl *Controller) handleChat(sid core.SessionID, conn core.SignalConnection, data []byte) {
	var p core.ChatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		ctl.sendJSON(conn, core.EvServerResponse, core.ServerResponsePayload{Message: "error: invalid message format"})
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		ctl.sendJSON(conn, core.EvServerResponse, core.ServerResponsePayload{Message: "error: invalid message format"})
		return
	}
	// Character limit, not bytes: multibyte text counts per rune.
	if utf8.RuneCountInString(p.Message) > ctl.cfg.MaxChatLen {
		ctl.sendJSON(conn, core.EvServerResponse, core.ServerResponsePayload{
			Message: fmt.Sprintf("error: message must be %d characters or less", ctl.cfg.MaxChatLen),
		})
		return
	}
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("chat rate limited")
		ctl.sendJSON(conn, core.EvServerResponse, core.ServerResponsePayload{Message: "error: too many messages, slow down"})
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Int("len", len(p.Message)).Msg("chat message")

	ctl.dispatch(func() []core.Effect {
		return []core.Effect{
			core.Unicast(sid, core.EvServerResponse, core.ServerResponsePayload{
				Message: fmt.Sprintf("message received: %q", p.Message),
			}),
			core.BroadcastOthers(sid, core.EvServerResponse, core.ServerResponsePayload{
				Message: fmt.Sprintf("new message: %q", p.Message),
			}),
		}
	})
}
