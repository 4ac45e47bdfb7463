package entities

import "time"

// MovieRanking aggregates every collected session of one movie. Pointer fields
// stay nil when no session in the group carried seat data; zero would be a lie.
type MovieRanking struct {
	MovieId               string    `json:"movieId"`
	Name                  string    `json:"name"`
	PosterUrl             string    `json:"posterUrl"`
	RuntimeMinutes        int       `json:"runtimeMinutes"`
	PresentationType      string    `json:"presentationType"`
	Sessions              []Session `json:"sessions"`
	AvailableCount        int       `json:"availableCount"`
	AverageOccupancy      *int      `json:"averageOccupancy,omitempty"`
	TotalSeatsBooked      *int      `json:"totalSeatsBooked,omitempty"`
	TotalSeatsAvailable   *int      `json:"totalSeatsAvailable,omitempty"`
	EarliestStartDateTime time.Time `json:"earliestStartDateTime"`
}

// RankingLogEntry is the persisted form of one ranked movie from one run.
type RankingLogEntry struct {
	RunId               string    `json:"runId"`
	MovieId             string    `json:"movieId"`
	MovieName           string    `json:"movieName"`
	AverageOccupancy    *int      `json:"averageOccupancy,omitempty"`
	AvailableCount      int       `json:"availableCount"`
	SessionCount        int       `json:"sessionCount"`
	TotalSeatsBooked    *int      `json:"totalSeatsBooked,omitempty"`
	TotalSeatsAvailable *int      `json:"totalSeatsAvailable,omitempty"`
	EarliestStart       time.Time `json:"earliestStart"`
	GeneratedAt         time.Time `json:"generatedAt"`
}
