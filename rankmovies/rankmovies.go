package rankmovies

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/client"
	"github.com/0xT4nj1r0/crowdplex/constant"
	"github.com/0xT4nj1r0/crowdplex/entities"
	"github.com/0xT4nj1r0/crowdplex/metrics"
)

// Stage identifies a pipeline checkpoint reported through ProgressFunc.
type Stage string

const (
	StageLocating   Stage = "locating_theatres"
	StageCollecting Stage = "collecting_showtimes"
	StageEnriching  Stage = "enriching_seats"
)

// ProgressFunc receives (stage, current, total) updates. It is dispatched
// fire-and-forget: the pipeline never waits on it, so implementations may be
// slow but must tolerate concurrent invocation.
type ProgressFunc func(stage Stage, current, total int)

// Status distinguishes a ranked result from the two terminal empty states,
// which are outcomes rather than errors.
type Status string

const (
	StatusOK          Status = "ok"
	StatusNoTheatres  Status = "no_theatres"
	StatusNoShowtimes Status = "no_showtimes"
)

type RankOutcome struct {
	Status   Status
	Rankings []entities.MovieRanking
}

type Options struct {
	API             client.CinemaAPI
	Logger          *zap.Logger
	ShowtimeWorkers int // concurrent showtime fetches, default 5
	SeatWorkers     int // concurrent seat-state fetches, default 15
	SeatLookupCap   int // priority subset size for enrichment, default 200
	Progress        ProgressFunc
}

// Pipeline wires the locate -> collect -> enrich -> rank stages over one
// CinemaAPI. Safe for sequential reuse; each run gets its own correlation id.
type Pipeline struct {
	api             client.CinemaAPI
	logger          *zap.Logger
	showtimeWorkers int
	seatWorkers     int
	seatLookupCap   int
	progress        ProgressFunc
}

func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	showtimeWorkers := opts.ShowtimeWorkers
	if showtimeWorkers <= 0 {
		showtimeWorkers = constant.DefaultShowtimeWorkers
	}
	seatWorkers := opts.SeatWorkers
	if seatWorkers <= 0 {
		seatWorkers = constant.DefaultSeatWorkers
	}
	seatLookupCap := opts.SeatLookupCap
	if seatLookupCap <= 0 {
		seatLookupCap = constant.DefaultSeatLookupCap
	}
	return &Pipeline{
		api:             opts.API,
		logger:          logger,
		showtimeWorkers: showtimeWorkers,
		seatWorkers:     seatWorkers,
		seatLookupCap:   seatLookupCap,
		progress:        opts.Progress,
	}
}

// RankMoviesNearby runs the whole pipeline: locate theatres for the areas,
// collect showtimes for the date (M/D/YYYY), enrich a bounded subset with live
// seat occupancy, and rank movies by crowd popularity. Empty theatre or
// session sets come back as non-error outcomes; anything else is a single
// pipeline failure.
func (p *Pipeline) RankMoviesNearby(ctx context.Context, areas []entities.SearchArea, date string) (*RankOutcome, error) {
	if _, err := time.Parse(constant.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q (want M/D/YYYY): %w", date, err)
	}

	logger := p.logger.With(zap.String("runId", uuid.NewString()))

	theatres := p.locateTheatres(ctx, logger, areas)
	if len(theatres) == 0 {
		logger.Info("no theatres in range", zap.Int("areas", len(areas)))
		return &RankOutcome{Status: StatusNoTheatres}, nil
	}
	logger.Info("theatres located", zap.Int("count", len(theatres)))

	sessions := p.collectSessions(ctx, logger, theatres, date)
	if len(sessions) == 0 {
		logger.Info("no showtimes for date", zap.String("date", date))
		return &RankOutcome{Status: StatusNoShowtimes}, nil
	}
	logger.Info("sessions collected", zap.Int("count", len(sessions)))

	sessions = p.enrichSeatOccupancy(ctx, logger, sessions)

	rankings := RankMovies(sessions)
	logger.Info("movies ranked", zap.Int("count", len(rankings)))
	return &RankOutcome{Status: StatusOK, Rankings: rankings}, nil
}

// notify dispatches a progress update without ever blocking the pipeline.
func (p *Pipeline) notify(stage Stage, current, total int) {
	if p.progress == nil {
		return
	}
	go p.progress(stage, current, total)
}

func observeStage(stage Stage, start time.Time) {
	metrics.StageDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
}
