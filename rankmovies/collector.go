package rankmovies

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/constant"
	"github.com/0xT4nj1r0/crowdplex/entities"
	"github.com/0xT4nj1r0/crowdplex/team"
)

// collectSessions fetches showtimes per theatre through the bounded pool and
// flattens the nested payload into one Session per leaf. Theatres whose fetch
// failed contribute nothing; the failure is only logged.
func (p *Pipeline) collectSessions(ctx context.Context, logger *zap.Logger, theatres []entities.Theatre, date string) []entities.Session {
	defer observeStage(StageCollecting, time.Now())
	p.notify(StageCollecting, 0, len(theatres))

	var completed int64
	pool := team.Team[entities.Theatre, *entities.ShowtimesResponse]{
		WorkerCount: p.showtimeWorkers,
		Worker: func(ctx context.Context, theatre entities.Theatre) (*entities.ShowtimesResponse, error) {
			resp, err := p.api.LookupShowtimes(ctx, theatre.TheatreId, date)
			p.notify(StageCollecting, int(atomic.AddInt64(&completed, 1)), len(theatres))
			return resp, err
		},
	}

	var sessions []entities.Session
	for _, res := range pool.Run(ctx, theatres) {
		if res.Err != nil {
			logger.Warn("showtime fetch failed",
				zap.String("theatreId", res.Item.TheatreId),
				zap.String("theatre", res.Item.Name),
				zap.Error(res.Err))
			continue
		}
		sessions = append(sessions, flattenShowtimes(logger, res.Item, res.Value)...)
	}
	return sessions
}

// flattenShowtimes walks theatre -> dates -> movies -> experiences -> sessions
// and emits a flat record per leaf, carrying the movie's display metadata and
// the experience's type tags down to every session.
func flattenShowtimes(logger *zap.Logger, theatre entities.Theatre, resp *entities.ShowtimesResponse) []entities.Session {
	if resp == nil {
		return nil
	}
	theatreName := resp.Theatre.Name
	if theatreName == "" {
		theatreName = theatre.Name
	}

	var flat []entities.Session
	for _, date := range resp.Theatre.Dates {
		for _, movie := range date.Movies {
			for _, experience := range movie.Experiences {
				for _, raw := range experience.Sessions {
					start, err := time.Parse(constant.StartTimeLayout, raw.StartDateTime)
					if err != nil {
						logger.Warn("unparseable session start time",
							zap.String("sessionId", raw.SessionId),
							zap.String("startDateTime", raw.StartDateTime))
					}
					flat = append(flat, entities.Session{
						MovieId:          movie.MovieId,
						MovieName:        movie.Name,
						PosterUrl:        movie.PosterUrl,
						RuntimeMinutes:   movie.RuntimeMinutes,
						PresentationType: movie.PresentationType,
						TheatreId:        theatre.TheatreId,
						TheatreName:      theatreName,
						StartDateTime:    start,
						SeatsRemaining:   raw.SeatsRemaining,
						IsSoldOut:        raw.IsSoldOut,
						Auditorium:       raw.Auditorium,
						SessionId:        raw.SessionId,
						ExperienceTypes:  experience.ExperienceTypes,
					})
				}
			}
		}
	}
	return flat
}
