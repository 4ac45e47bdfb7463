package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeatSnapshot(t *testing.T) {
	snap := NewSeatSnapshot(map[string]string{
		"A1": "Occupied",
		"A2": "Available",
		"A3": "Occupied",
		"A4": "Available",
	})

	assert.Equal(t, 4, snap.TotalSeats)
	assert.Equal(t, 2, snap.OccupiedSeats)
	assert.Equal(t, 2, snap.AvailableSeats)
	assert.Equal(t, 50, snap.OccupancyPct)
}

func TestNewSeatSnapshotEmptyMap(t *testing.T) {
	snap := NewSeatSnapshot(map[string]string{})

	assert.Equal(t, 0, snap.TotalSeats)
	assert.Equal(t, 0, snap.OccupancyPct)
}

func TestNewSeatSnapshotUnknownStatus(t *testing.T) {
	snap := NewSeatSnapshot(map[string]string{
		"B1": "Occupied",
		"B2": "Blocked",
		"B3": "Available",
	})

	assert.Equal(t, 3, snap.TotalSeats)
	assert.Equal(t, 1, snap.OccupiedSeats)
	assert.Equal(t, 1, snap.AvailableSeats)
	assert.Equal(t, 33, snap.OccupancyPct)
}

func TestNewSeatSnapshotRoundsToNearest(t *testing.T) {
	snap := NewSeatSnapshot(map[string]string{
		"C1": "Occupied",
		"C2": "Occupied",
		"C3": "Available",
	})

	// 2/3 = 66.66...% rounds up
	assert.Equal(t, 67, snap.OccupancyPct)
}

func TestSessionSoldOut(t *testing.T) {
	s := Session{SeatsRemaining: 12}
	assert.False(t, s.SoldOut())

	s.IsSoldOut = true
	assert.True(t, s.SoldOut())

	s = Session{SeatsRemaining: 0}
	assert.True(t, s.SoldOut())
}
