package rankmovies

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/entities"
)

// locateTheatres queries every search area and merges the results into one set
// keyed by theatre id, keeping the first occurrence. A failed area is logged
// and skipped; partial results are fine.
func (p *Pipeline) locateTheatres(ctx context.Context, logger *zap.Logger, areas []entities.SearchArea) []entities.Theatre {
	defer observeStage(StageLocating, time.Now())
	p.notify(StageLocating, 0, len(areas))

	seen := mapset.NewSet[string]()
	var theatres []entities.Theatre
	for i, area := range areas {
		resp, err := p.api.LookupTheatres(ctx, area)
		if err != nil {
			logger.Warn("theatre lookup failed",
				zap.String("area", area.Name),
				zap.Error(err))
			p.notify(StageLocating, i+1, len(areas))
			continue
		}
		for _, theatre := range resp.NearbyTheatres {
			if seen.Add(theatre.TheatreId) {
				theatres = append(theatres, theatre)
			}
		}
		p.notify(StageLocating, i+1, len(areas))
	}
	return theatres
}
