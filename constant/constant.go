package constant

import "time"

const (
	THEATRES_URL  = "%s/theatres/nearby?latitude=%.6f&longitude=%.6f&radiusKm=%.1f"
	SHOWTIMES_URL = "%s/theatres/%s/showtimes?date=%s"
	SEATS_URL     = "%s/theatres/%s/sessions/%s/seat-state"

	DEFAULT_BASE_URL = "https://api.crowdplex.app/v1"

	// Upstream showtime endpoint expects M/D/YYYY, no zero padding.
	DateLayout = "1/2/2006"

	StartTimeLayout = "2006-01-02T15:04:05"
)

const (
	DefaultShowtimeWorkers = 5
	DefaultSeatWorkers     = 15
	DefaultSeatLookupCap   = 200

	DefaultRequestTimeout = 30 * time.Second

	DefaultTheatreTTL  = 10 * time.Minute
	DefaultShowtimeTTL = 5 * time.Minute
)
