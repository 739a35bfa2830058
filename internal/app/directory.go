package app

import (
	"github.com/samber/lo"

	"github.com/dkeye/Duel/internal/core"
	"github.com/dkeye/Duel/internal/domain"
)

// Project derives the public directory from a set of room snapshots:
// only rooms still waiting for a second participant are discoverable.
// Pure function, recomputed fresh on every call; room counts are small
// enough that caching would be noise.
func Project(rooms []core.RoomSnapshot) []core.RoomSummary {
	waiting := lo.Filter(rooms, func(s core.RoomSnapshot, _ int) bool {
		return s.Status == domain.StatusWaiting
	})
	return lo.Map(waiting, func(s core.RoomSnapshot, _ int) core.RoomSummary {
		return core.RoomSummary{
			RoomID:      s.Room.ID,
			RoomName:    s.Room.Name,
			RoomCreator: s.Room.CreatorName,
			CreatedAt:   s.Room.CreatedAt,
			CreatorSID:  s.CreatorSID,
			Status:      s.Status,
		}
	})
}
