package rankmovies

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

func TestCollectSessionsFlattensNestedPayload(t *testing.T) {
	api := &fakeAPI{
		showtimes: func(ctx context.Context, theatreId, date string) (*entities.ShowtimesResponse, error) {
			return showtimesPayload(theatreId, "m-1", "Heat",
				entities.ShowtimeSession{SessionId: "s-1", StartDateTime: "2026-09-01T18:30:00", SeatsRemaining: 40, Auditorium: "2"},
				entities.ShowtimeSession{SessionId: "s-2", StartDateTime: "2026-09-01T21:15:00", SeatsRemaining: 0, IsSoldOut: true, Auditorium: "2"},
			), nil
		},
	}
	p := New(Options{API: api})

	sessions := p.collectSessions(context.Background(), zap.NewNop(), []entities.Theatre{
		{TheatreId: "100", Name: "Downtown 12"},
	}, "9/1/2026")

	require.Len(t, sessions, 2)
	first := sessions[0]
	assert.Equal(t, "m-1", first.MovieId)
	assert.Equal(t, "Heat", first.MovieName)
	assert.Equal(t, "https://img.example/m-1.jpg", first.PosterUrl)
	assert.Equal(t, 120, first.RuntimeMinutes)
	assert.Equal(t, "2D", first.PresentationType)
	assert.Equal(t, "100", first.TheatreId)
	assert.Equal(t, []string{"Standard"}, first.ExperienceTypes)
	assert.Equal(t, time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC), first.StartDateTime)
	assert.Nil(t, first.Occupancy)
	assert.True(t, sessions[1].IsSoldOut)
}

func TestCollectSessionsDropsFailedTheatres(t *testing.T) {
	api := &fakeAPI{
		showtimes: func(ctx context.Context, theatreId, date string) (*entities.ShowtimesResponse, error) {
			if theatreId == "100" {
				return nil, fmt.Errorf("timeout")
			}
			return showtimesPayload(theatreId, "m-2", "Ronin", entities.ShowtimeSession{
				SessionId: "s-9", StartDateTime: "2026-09-01T19:00:00", SeatsRemaining: 10,
			}), nil
		},
	}
	p := New(Options{API: api})

	sessions := p.collectSessions(context.Background(), zap.NewNop(), []entities.Theatre{
		{TheatreId: "100"}, {TheatreId: "200"},
	}, "9/1/2026")

	require.Len(t, sessions, 1)
	assert.Equal(t, "200", sessions[0].TheatreId)
}

func TestFlattenShowtimesCarriesExperienceTags(t *testing.T) {
	resp := &entities.ShowtimesResponse{
		Theatre: entities.ShowtimeTheatre{
			TheatreId: "100",
			Name:      "Downtown 12",
			Dates: []entities.ShowtimeDate{{
				Date: "2026-09-01",
				Movies: []entities.ShowtimeMovie{{
					MovieId: "m-1",
					Name:    "Dune",
					Experiences: []entities.ShowtimeExperience{
						{
							ExperienceTypes: []string{"IMAX", "3D"},
							Sessions: []entities.ShowtimeSession{
								{SessionId: "s-imax", StartDateTime: "2026-09-01T20:00:00"},
							},
						},
						{
							ExperienceTypes: []string{"Standard"},
							Sessions: []entities.ShowtimeSession{
								{SessionId: "s-std", StartDateTime: "2026-09-01T17:00:00"},
							},
						},
					},
				}},
			}},
		},
	}

	sessions := flattenShowtimes(zap.NewNop(), entities.Theatre{TheatreId: "100"}, resp)

	require.Len(t, sessions, 2)
	assert.Equal(t, []string{"IMAX", "3D"}, sessions[0].ExperienceTypes)
	assert.Equal(t, []string{"Standard"}, sessions[1].ExperienceTypes)
	assert.Equal(t, "Downtown 12", sessions[0].TheatreName)
}
