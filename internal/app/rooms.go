package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/core"
	"github.com/dkeye/Duel/internal/domain"
)

const roomCapacity = 2

type roomEntry struct {
	meta         *domain.Room
	creator      core.SessionID
	status       domain.RoomStatus
	participants []core.SessionID
	names        map[core.SessionID]string
}

func (e *roomEntry) recalcStatus() {
	if len(e.participants) == roomCapacity {
		e.status = domain.StatusInProgress
	} else {
		e.status = domain.StatusWaiting
	}
}

func (e *roomEntry) snapshot() core.RoomSnapshot {
	parts := make([]core.SessionID, len(e.participants))
	copy(parts, e.participants)
	names := make(map[core.SessionID]string, len(e.names))
	for sid, n := range e.names {
		names[sid] = n
	}
	return core.RoomSnapshot{
		Room:         *e.meta,
		CreatorSID:   e.creator,
		Status:       e.status,
		Participants: parts,
		Names:        names,
	}
}

// Departure reports one room a disconnecting handle was removed from.
// Opponent is empty when the removal deleted the room.
type Departure struct {
	RoomID   domain.RoomID
	Opponent core.SessionID
}

// RoomStore owns every live room. Each mutation validates fully before
// touching state, so a rejected call leaves the store untouched.
type RoomStore struct {
	mu       sync.RWMutex
	registry *Registry
	rooms    map[domain.RoomID]*roomEntry
	order    []domain.RoomID // creation order, keeps listings deterministic
}

func NewRoomStore(registry *Registry) *RoomStore {
	return &RoomStore{
		registry: registry,
		rooms:    make(map[domain.RoomID]*roomEntry),
	}
}

// CreateRoom opens a new waiting room with the requester as sole
// participant and flips the requester to in_room.
func (s *RoomStore) CreateRoom(sid core.SessionID, id domain.RoomID, name domain.RoomName, creatorName string) (core.RoomSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.GetState(sid) != core.StateOnline {
		return core.RoomSnapshot{}, domain.ErrAlreadyInRoom
	}
	meta, err := domain.NewRoom(id, name, creatorName)
	if err != nil {
		return core.RoomSnapshot{}, err
	}
	if _, exists := s.rooms[id]; exists {
		return core.RoomSnapshot{}, domain.ErrRoomIDInUse
	}

	entry := &roomEntry{
		meta:         meta,
		creator:      sid,
		status:       domain.StatusWaiting,
		participants: []core.SessionID{sid},
		names:        map[core.SessionID]string{sid: creatorName},
	}
	s.rooms[id] = entry
	s.order = append(s.order, id)
	s.registry.SetState(sid, core.StateInRoom)

	log.Info().Str("module", "app.rooms").Str("sid", string(sid)).Str("room", string(id)).Msg("room created")
	return entry.snapshot(), nil
}

// JoinRoom admits the requester as the second participant and flips the
// room to in_progress. Returns the updated room.
func (s *RoomStore) JoinRoom(sid core.SessionID, id domain.RoomID, playerName string) (core.RoomSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.GetState(sid) != core.StateOnline {
		return core.RoomSnapshot{}, domain.ErrAlreadyInRoom
	}
	entry, ok := s.rooms[id]
	if !ok {
		return core.RoomSnapshot{}, domain.ErrRoomNotFound
	}
	if entry.status != domain.StatusWaiting {
		return core.RoomSnapshot{}, domain.ErrRoomStarted
	}
	// Unreachable while the status invariant holds; kept as a hard stop
	// against a room that somehow went over capacity.
	if len(entry.participants) >= roomCapacity {
		return core.RoomSnapshot{}, domain.ErrRoomFull
	}

	entry.participants = append(entry.participants, sid)
	entry.names[sid] = playerName
	entry.recalcStatus()
	s.registry.SetState(sid, core.StateInRoom)

	log.Info().Str("module", "app.rooms").Str("sid", string(sid)).Str("room", string(id)).Msg("joined room")
	return entry.snapshot(), nil
}

// LeaveRoom removes the handle from the room if it is actually a member;
// anything else is a no-op, not an error. An emptied room is deleted on
// the spot. Returns the remaining participant (if the room survived) and
// whether anything changed. Resetting the leaver's registry state is the
// router's job, not ours.
func (s *RoomStore) LeaveRoom(sid core.SessionID, id domain.RoomID) (remaining core.SessionID, removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.rooms[id]
	if !ok {
		return "", false
	}
	return s.removeLocked(entry, sid)
}

// RemoveFromAllRooms applies leave semantics to every room containing the
// handle. The invariant says at most one, but the scan is total so a
// violated invariant still gets cleaned up. Used only on disconnect.
func (s *RoomStore) RemoveFromAllRooms(sid core.SessionID) []Departure {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Departure
	for _, id := range append([]domain.RoomID(nil), s.order...) {
		entry := s.rooms[id]
		remaining, removed := s.removeLocked(entry, sid)
		if removed {
			out = append(out, Departure{RoomID: id, Opponent: remaining})
		}
	}
	return out
}

func (s *RoomStore) removeLocked(entry *roomEntry, sid core.SessionID) (remaining core.SessionID, removed bool) {
	idx := -1
	for i, p := range entry.participants {
		if p == sid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}

	entry.participants = append(entry.participants[:idx], entry.participants[idx+1:]...)
	delete(entry.names, sid)

	id := entry.meta.ID
	if len(entry.participants) == 0 {
		delete(s.rooms, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room deleted")
		return "", true
	}

	// A two-party room losing one member always reverts to waiting.
	entry.recalcStatus()
	log.Info().Str("module", "app.rooms").Str("sid", string(sid)).Str("room", string(id)).Msg("left room")
	return entry.participants[0], true
}

// Snapshot returns a copy of one room, if it exists.
func (s *RoomStore) Snapshot(id domain.RoomID) (core.RoomSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.rooms[id]
	if !ok {
		return core.RoomSnapshot{}, false
	}
	return entry.snapshot(), true
}

// Snapshots returns a copy of every room in creation order.
func (s *RoomStore) Snapshots() []core.RoomSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.RoomSnapshot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rooms[id].snapshot())
	}
	return out
}
