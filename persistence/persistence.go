package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

// Persistence records ranking snapshots so runs can be compared over time.
// Implementations: FilePersistence, PostgresPersistence.
type Persistence interface {
	WriteRanking(ctx context.Context, entry entities.RankingLogEntry) error
}

// EntriesFromRankings converts one run's output into persistable rows.
func EntriesFromRankings(runId string, generatedAt time.Time, rankings []entities.MovieRanking) []entities.RankingLogEntry {
	entries := make([]entities.RankingLogEntry, 0, len(rankings))
	for _, ranking := range rankings {
		entries = append(entries, entities.RankingLogEntry{
			RunId:               runId,
			MovieId:             ranking.MovieId,
			MovieName:           ranking.Name,
			AverageOccupancy:    ranking.AverageOccupancy,
			AvailableCount:      ranking.AvailableCount,
			SessionCount:        len(ranking.Sessions),
			TotalSeatsBooked:    ranking.TotalSeatsBooked,
			TotalSeatsAvailable: ranking.TotalSeatsAvailable,
			EarliestStart:       ranking.EarliestStartDateTime,
			GeneratedAt:         generatedAt,
		})
	}
	return entries
}

// FilePersistence appends one JSON line per entry.
type FilePersistence struct {
	FilePath string
	mu       sync.Mutex
}

func NewFilePersistence(filePath string) *FilePersistence {
	return &FilePersistence{FilePath: filePath}
}

func (f *FilePersistence) WriteRanking(ctx context.Context, entry entities.RankingLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, err := os.OpenFile(f.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ranking log: %w", err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("error writing ranking entry: %w", err)
	}
	return nil
}

// PostgresPersistence writes entries to the movie_ranking table.
type PostgresPersistence struct {
	Pool *pgxpool.Pool
}

func NewPostgresPersistence(pool *pgxpool.Pool) *PostgresPersistence {
	return &PostgresPersistence{Pool: pool}
}

func (p *PostgresPersistence) WriteRanking(ctx context.Context, entry entities.RankingLogEntry) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO movie_ranking (
			run_id, movie_id, movie_name, average_occupancy, available_count,
			session_count, total_seats_booked, total_seats_available,
			earliest_start, generated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		entry.RunId,
		entry.MovieId,
		entry.MovieName,
		entry.AverageOccupancy,
		entry.AvailableCount,
		entry.SessionCount,
		entry.TotalSeatsBooked,
		entry.TotalSeatsAvailable,
		entry.EarliestStart,
		entry.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting ranking entry: %w", err)
	}
	return nil
}
