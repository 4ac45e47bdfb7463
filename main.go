package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/client"
	"github.com/0xT4nj1r0/crowdplex/constant"
	"github.com/0xT4nj1r0/crowdplex/persistence"
	"github.com/0xT4nj1r0/crowdplex/rankmovies"
	"github.com/0xT4nj1r0/crowdplex/store"
	"github.com/0xT4nj1r0/crowdplex/utils"
)

func main() {
	date := flag.String("date", time.Now().Format(constant.DateLayout), "Showtime date (M/D/YYYY)")
	areasFile := flag.String("areas", "areas.json", "JSON file with search areas")
	showtimeWorkers := flag.Int("workers", constant.DefaultShowtimeWorkers, "Concurrent showtime fetches")
	seatWorkers := flag.Int("seat-workers", constant.DefaultSeatWorkers, "Concurrent seat-state fetches")
	seatCap := flag.Int("seat-cap", constant.DefaultSeatLookupCap, "Max sessions enriched with seat data")
	outFile := flag.String("out", "", "Optional file to write the full ranking JSON to")
	persist := flag.Bool("persist", false, "Write the ranking snapshot to Postgres")
	flag.Parse()

	_ = godotenv.Load()

	logger := newLogger()
	defer logger.Sync()

	areas, err := utils.ReadSearchAreas(*areasFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load search areas: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📍 %d search area(s) loaded, ranking movies for %s\n", len(areas), *date)

	cache := newStore(logger)
	defer cache.Close()

	api, err := client.New(client.Options{
		BaseURL:  os.Getenv("CINEMA_API_URL"),
		APIKey:   os.Getenv("CINEMA_API_KEY"),
		ProxyURL: os.Getenv("CINEMA_PROXY_URL"),
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build API client: %v\n", err)
		os.Exit(1)
	}

	reporter := utils.NewConsoleReporter(os.Stdout)
	pipeline := rankmovies.New(rankmovies.Options{
		API:             client.NewCached(api, cache, logger),
		Logger:          logger,
		ShowtimeWorkers: *showtimeWorkers,
		SeatWorkers:     *seatWorkers,
		SeatLookupCap:   *seatCap,
		Progress:        reporter.Report,
	})

	ctx := context.Background()
	outcome, err := pipeline.RankMoviesNearby(ctx, areas, *date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\npipeline failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	switch outcome.Status {
	case rankmovies.StatusNoTheatres:
		fmt.Println("😕 No theatres in range.")
		return
	case rankmovies.StatusNoShowtimes:
		fmt.Println("😕 No showtimes for that date.")
		return
	}

	fmt.Printf("🏁 %d movie(s) ranked by crowd popularity:\n\n", len(outcome.Rankings))
	for i, ranking := range outcome.Rankings {
		occupancy := "n/a"
		if ranking.AverageOccupancy != nil {
			occupancy = fmt.Sprintf("%d%%", *ranking.AverageOccupancy)
		}
		fmt.Printf("%2d. %-40s avg occupancy %-5s %d session(s), %d bookable, first at %s\n",
			i+1, ranking.Name, occupancy, len(ranking.Sessions), ranking.AvailableCount,
			ranking.EarliestStartDateTime.Format("15:04"))
	}

	if *outFile != "" {
		if err := utils.WriteRankingsToFile(outcome.Rankings, *outFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write rankings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n📄 Full ranking written to", *outFile)
	}

	if *persist {
		if err := persistRankings(ctx, outcome); err != nil {
			fmt.Fprintf(os.Stderr, "failed to persist rankings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("🗄️  Ranking snapshot persisted")
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("DEBUG") != "" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

// newStore prefers Redis when REDIS_ADDR is set, falling back to the
// in-process TTL store.
func newStore(logger *zap.Logger) store.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return store.NewMemoryStore(time.Minute)
	}
	redisStore, err := store.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), 0, "crowdplex:")
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		return store.NewMemoryStore(time.Minute)
	}
	return redisStore
}

func persistRankings(ctx context.Context, outcome *rankmovies.RankOutcome) error {
	pool, err := persistence.NewPostgresPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := persistence.InitPostgresSchema(ctx, pool); err != nil {
		return err
	}

	db := persistence.NewPostgresPersistence(pool)
	entries := persistence.EntriesFromRankings(uuid.NewString(), time.Now(), outcome.Rankings)
	for _, entry := range entries {
		if err := db.WriteRanking(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
