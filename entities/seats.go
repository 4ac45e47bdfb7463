package entities

import "math"

const (
	SeatAvailable = "Available"
	SeatOccupied  = "Occupied"
)

// SeatStateResponse is the raw seat map returned by the seat-state lookup.
// Statuses other than Available/Occupied (blocked, broken, companion...) count
// toward the total but toward neither side.
type SeatStateResponse struct {
	SeatAvailabilities map[string]string `json:"seatAvailabilities"`
}

type SeatSnapshot struct {
	TotalSeats     int `json:"totalSeats"`
	OccupiedSeats  int `json:"occupiedSeats"`
	AvailableSeats int `json:"availableSeats"`
	OccupancyPct   int `json:"occupancyPct"`
}

// NewSeatSnapshot derives occupancy figures from a raw seat map. An empty map
// yields a zero snapshot rather than a division failure.
func NewSeatSnapshot(seatMap map[string]string) SeatSnapshot {
	snap := SeatSnapshot{TotalSeats: len(seatMap)}
	for _, status := range seatMap {
		switch status {
		case SeatOccupied:
			snap.OccupiedSeats++
		case SeatAvailable:
			snap.AvailableSeats++
		}
	}
	if snap.TotalSeats > 0 {
		snap.OccupancyPct = int(math.Round(float64(snap.OccupiedSeats) / float64(snap.TotalSeats) * 100))
	}
	return snap
}
