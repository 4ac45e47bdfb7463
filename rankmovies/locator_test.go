package rankmovies

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

func TestLocateTheatresDeduplicatesAcrossAreas(t *testing.T) {
	api := &fakeAPI{
		theatres: func(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error) {
			// Both areas see theatre 100; only the second sees 200.
			theatres := []entities.Theatre{{TheatreId: "100", Name: "X"}}
			if area.Name == "east" {
				theatres = append(theatres, entities.Theatre{TheatreId: "200", Name: "Y"})
			}
			return &entities.TheatresResponse{NearbyTheatres: theatres}, nil
		},
	}
	p := New(Options{API: api})

	theatres := p.locateTheatres(context.Background(), zap.NewNop(), []entities.SearchArea{
		{Name: "west"}, {Name: "east"},
	})

	assert.Len(t, theatres, 2)
	assert.Equal(t, "100", theatres[0].TheatreId)
	assert.Equal(t, "200", theatres[1].TheatreId)
}

func TestLocateTheatresKeepsFirstOccurrence(t *testing.T) {
	api := &fakeAPI{
		theatres: func(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error) {
			return &entities.TheatresResponse{NearbyTheatres: []entities.Theatre{
				{TheatreId: "100", Name: "seen from " + area.Name},
			}}, nil
		},
	}
	p := New(Options{API: api})

	theatres := p.locateTheatres(context.Background(), zap.NewNop(), []entities.SearchArea{
		{Name: "west"}, {Name: "east"},
	})

	assert.Len(t, theatres, 1)
	assert.Equal(t, "seen from west", theatres[0].Name)
}

func TestLocateTheatresSkipsFailedAreas(t *testing.T) {
	api := &fakeAPI{
		theatres: func(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error) {
			if area.Name == "broken" {
				return nil, fmt.Errorf("boom")
			}
			return &entities.TheatresResponse{NearbyTheatres: []entities.Theatre{
				{TheatreId: "300", Name: "Z"},
			}}, nil
		},
	}
	p := New(Options{API: api})

	theatres := p.locateTheatres(context.Background(), zap.NewNop(), []entities.SearchArea{
		{Name: "broken"}, {Name: "fine"},
	})

	assert.Len(t, theatres, 1)
	assert.Equal(t, "300", theatres[0].TheatreId)
}
