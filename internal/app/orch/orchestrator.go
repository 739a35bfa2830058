// Package orch is the session event router: every transport event
// (connect, inbound message, disconnect) is applied here against the
// registry and the room store, one at a time, and comes back as a list
// of notifications for the adapter to deliver.
package orch

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/app"
	"github.com/dkeye/Duel/internal/core"
	"github.com/dkeye/Duel/internal/domain"
)

const defaultPlayerName = "guest"

type Orchestrator struct {
	// mu serializes events. A transition runs to completion, effects
	// included, before the next one starts; that single total order is
	// what makes leave/disconnect races impossible.
	mu       sync.Mutex
	Registry *app.Registry
	Rooms    *app.RoomStore
}

func New(registry *app.Registry, rooms *app.RoomStore) *Orchestrator {
	return &Orchestrator{Registry: registry, Rooms: rooms}
}

func (o *Orchestrator) directory() []core.RoomSummary {
	return app.Project(o.Rooms.Snapshots())
}

// OnConnect registers the fresh handle and seeds the new connection with
// the current directory and user count, then announces the new count to
// everyone.
func (o *Orchestrator) OnConnect(sid core.SessionID) []core.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.Registry.Register(sid)
	count := o.Registry.Count()
	log.Info().Str("module", "orch").Str("sid", string(sid)).Int("users", count).Msg("connected")

	return []core.Effect{
		core.Unicast(sid, core.EvRoomsList, o.directory()),
		core.Unicast(sid, core.EvUserCount, count),
		core.Broadcast(core.EvUserCount, count),
	}
}

func (o *Orchestrator) OnCreateRoom(sid core.SessionID, p core.CreateRoomPayload) []core.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()

	creator := p.RoomCreator
	if creator == "" {
		creator = defaultPlayerName
	}

	snap, err := o.Rooms.CreateRoom(sid, domain.RoomID(p.RoomID), domain.RoomName(p.RoomName), creator)
	if err != nil {
		return reject(sid, err)
	}

	return []core.Effect{
		core.Unicast(sid, core.EvRoomCreated, core.RoomCreatedPayload{
			RoomID:      snap.Room.ID,
			RoomName:    snap.Room.Name,
			RoomCreator: snap.Room.CreatorName,
			IsHost:      true,
		}),
		core.Broadcast(core.EvRoomsList, o.directory()),
	}
}

func (o *Orchestrator) OnJoinRoom(sid core.SessionID, p core.JoinRoomPayload) []core.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()

	name := p.PlayerName
	if name == "" {
		name = defaultPlayerName
	}

	snap, err := o.Rooms.JoinRoom(sid, domain.RoomID(p.RoomID), name)
	if err != nil {
		return reject(sid, err)
	}

	host := snap.CreatorSID
	return []core.Effect{
		core.Unicast(sid, core.EvRoomJoined, core.RoomJoinedPayload{
			RoomID:       snap.Room.ID,
			RoomName:     snap.Room.Name,
			IsHost:       false,
			Opponent:     host,
			OpponentName: snap.Names[host],
			PlayerName:   name,
		}),
		core.Unicast(host, core.EvRoomStatusChanged, core.RoomStatusChangedPayload{
			RoomID:       snap.Room.ID,
			Status:       snap.Status,
			OpponentName: name,
		}),
		core.Broadcast(core.EvRoomsList, o.directory()),
	}
}

// OnLeaveRoom removes the requester from the named room. Leaving a room
// one is not in is a no-op: the state still resets to online, but nothing
// changed, so nothing is broadcast.
func (o *Orchestrator) OnLeaveRoom(sid core.SessionID, p core.LeaveRoomPayload) []core.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := domain.RoomID(p.RoomID)
	remaining, removed := o.Rooms.LeaveRoom(sid, id)
	o.Registry.SetState(sid, core.StateOnline)
	if !removed {
		return nil
	}
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(id)).Msg("left room")

	var effects []core.Effect
	if remaining != "" {
		effects = append(effects, core.Unicast(remaining, core.EvOpponentLeft, core.OpponentLeftPayload{RoomID: id}))
	}
	return append(effects, core.Broadcast(core.EvRoomsList, o.directory()))
}

// OnDisconnect runs the same cleanup as an explicit leave for every room
// the handle was in, then drops the handle. Calling it again for an
// already-removed handle yields no effects at all.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) []core.Effect {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Registry.GetState(sid) == core.StateAbsent {
		return nil
	}

	departures := o.Rooms.RemoveFromAllRooms(sid)
	o.Registry.Unregister(sid)
	count := o.Registry.Count()
	log.Info().Str("module", "orch").Str("sid", string(sid)).Int("users", count).Msg("disconnected")

	var effects []core.Effect
	for _, d := range departures {
		if d.Opponent != "" {
			effects = append(effects, core.Unicast(d.Opponent, core.EvOpponentLeft, core.OpponentLeftPayload{RoomID: d.RoomID}))
		}
	}
	effects = append(effects,
		core.Broadcast(core.EvUserCount, count),
		core.Broadcast(core.EvRoomsList, o.directory()),
	)
	return effects
}

// reject answers the requesting connection only; rejections are never
// broadcast and never mutate state.
func reject(sid core.SessionID, err error) []core.Effect {
	log.Warn().Str("module", "orch").Str("sid", string(sid)).Err(err).Msg("request rejected")
	return []core.Effect{
		core.Unicast(sid, core.EvRoomError, core.RoomErrorPayload{Message: err.Error()}),
	}
}
