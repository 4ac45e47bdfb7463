package rankmovies

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/entities"
	"github.com/0xT4nj1r0/crowdplex/team"
)

// enrichSeatOccupancy fetches live seat state for a bounded, soonest-first
// subset of sessions and merges the snapshots back onto the full list in
// place. The sort runs on a copy; the merge keys on (theatreId, sessionId),
// never on position, because the subset and the original have different
// orders. Sessions outside the subset, or whose fetch failed, keep a nil
// Occupancy.
func (p *Pipeline) enrichSeatOccupancy(ctx context.Context, logger *zap.Logger, sessions []entities.Session) []entities.Session {
	defer observeStage(StageEnriching, time.Now())

	sorted := make([]entities.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDateTime.Before(sorted[j].StartDateTime)
	})

	subset := sorted
	if len(subset) > p.seatLookupCap {
		subset = subset[:p.seatLookupCap]
	}
	p.notify(StageEnriching, 0, len(subset))

	var completed int64
	pool := team.Team[entities.Session, entities.SeatSnapshot]{
		WorkerCount: p.seatWorkers,
		Worker: func(ctx context.Context, session entities.Session) (entities.SeatSnapshot, error) {
			resp, err := p.api.LookupSeatState(ctx, session.TheatreId, session.SessionId)
			p.notify(StageEnriching, int(atomic.AddInt64(&completed, 1)), len(subset))
			if err != nil {
				return entities.SeatSnapshot{}, err
			}
			return entities.NewSeatSnapshot(resp.SeatAvailabilities), nil
		},
	}

	snapshots := make(map[string]entities.SeatSnapshot, len(subset))
	for _, res := range pool.Run(ctx, subset) {
		if res.Err != nil {
			logger.Debug("seat state fetch failed",
				zap.String("theatreId", res.Item.TheatreId),
				zap.String("sessionId", res.Item.SessionId),
				zap.Error(res.Err))
			continue
		}
		snapshots[res.Item.Key()] = res.Value
	}

	for i := range sessions {
		if snap, ok := snapshots[sessions[i].Key()]; ok {
			s := snap
			sessions[i].Occupancy = &s
		}
	}
	return sessions
}
