package rankmovies

import (
	"math"
	"sort"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

// RankMovies groups sessions by movie, computes occupancy aggregates, and
// orders the groups: fullest theatres bubble to the top; among unknowns or
// ties, the soonest showtime wins.
func RankMovies(sessions []entities.Session) []entities.MovieRanking {
	groups := make(map[string]*entities.MovieRanking)
	var order []string

	for _, session := range sessions {
		group, ok := groups[session.MovieId]
		if !ok {
			// First-seen display metadata wins for the whole group.
			group = &entities.MovieRanking{
				MovieId:          session.MovieId,
				Name:             session.MovieName,
				PosterUrl:        session.PosterUrl,
				RuntimeMinutes:   session.RuntimeMinutes,
				PresentationType: session.PresentationType,
			}
			groups[session.MovieId] = group
			order = append(order, session.MovieId)
		}
		group.Sessions = append(group.Sessions, session)
	}

	rankings := make([]entities.MovieRanking, 0, len(order))
	for _, movieId := range order {
		group := groups[movieId]
		aggregate(group)
		rankings = append(rankings, *group)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return ranksBefore(&rankings[i], &rankings[j])
	})
	return rankings
}

func aggregate(group *entities.MovieRanking) {
	var occupancySum, occupancyCount, booked, totalSeats int
	for i, session := range group.Sessions {
		if !session.SoldOut() {
			group.AvailableCount++
		}
		if i == 0 || session.StartDateTime.Before(group.EarliestStartDateTime) {
			group.EarliestStartDateTime = session.StartDateTime
		}
		if session.Occupancy != nil {
			occupancySum += session.Occupancy.OccupancyPct
			occupancyCount++
			booked += session.Occupancy.OccupiedSeats
			totalSeats += session.Occupancy.TotalSeats
		}
	}
	if occupancyCount > 0 {
		avg := int(math.Round(float64(occupancySum) / float64(occupancyCount)))
		group.AverageOccupancy = &avg
	}
	if booked > 0 {
		group.TotalSeatsBooked = &booked
	}
	if totalSeats > 0 {
		group.TotalSeatsAvailable = &totalSeats
	}
}

// ranksBefore implements the total order: a defined average sorts before an
// undefined one; among defined, higher average first; remaining ties break by
// earliest start time ascending.
func ranksBefore(a, b *entities.MovieRanking) bool {
	switch {
	case a.AverageOccupancy != nil && b.AverageOccupancy == nil:
		return true
	case a.AverageOccupancy == nil && b.AverageOccupancy != nil:
		return false
	case a.AverageOccupancy != nil && b.AverageOccupancy != nil:
		if *a.AverageOccupancy != *b.AverageOccupancy {
			return *a.AverageOccupancy > *b.AverageOccupancy
		}
	}
	return a.EarliestStartDateTime.Before(b.EarliestStartDateTime)
}
