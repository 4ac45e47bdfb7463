package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/constant"
	"github.com/0xT4nj1r0/crowdplex/entities"
	"github.com/0xT4nj1r0/crowdplex/metrics"
	"github.com/0xT4nj1r0/crowdplex/store"
)

// CachedClient decorates a CinemaAPI with a TTL store for theatre and showtime
// responses. Seat state is never cached: it is a live snapshot by definition.
type CachedClient struct {
	api         CinemaAPI
	store       store.Store
	theatreTTL  time.Duration
	showtimeTTL time.Duration
	logger      *zap.Logger
}

func NewCached(api CinemaAPI, cache store.Store, logger *zap.Logger) *CachedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedClient{
		api:         api,
		store:       cache,
		theatreTTL:  constant.DefaultTheatreTTL,
		showtimeTTL: constant.DefaultShowtimeTTL,
		logger:      logger,
	}
}

func (c *CachedClient) LookupTheatres(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error) {
	key := fmt.Sprintf("theatres:%.6f:%.6f:%.1f", area.Latitude, area.Longitude, area.RadiusKm)
	var cached entities.TheatresResponse
	if c.fromCache(ctx, endpointTheatres, key, &cached) {
		return &cached, nil
	}
	resp, err := c.api.LookupTheatres(ctx, area)
	if err != nil {
		return nil, err
	}
	c.toCache(ctx, key, resp, c.theatreTTL)
	return resp, nil
}

func (c *CachedClient) LookupShowtimes(ctx context.Context, theatreId, date string) (*entities.ShowtimesResponse, error) {
	key := "showtimes:" + theatreId + ":" + date
	var cached entities.ShowtimesResponse
	if c.fromCache(ctx, endpointShowtimes, key, &cached) {
		return &cached, nil
	}
	resp, err := c.api.LookupShowtimes(ctx, theatreId, date)
	if err != nil {
		return nil, err
	}
	c.toCache(ctx, key, resp, c.showtimeTTL)
	return resp, nil
}

func (c *CachedClient) LookupSeatState(ctx context.Context, theatreId, sessionId string) (*entities.SeatStateResponse, error) {
	return c.api.LookupSeatState(ctx, theatreId, sessionId)
}

func (c *CachedClient) fromCache(ctx context.Context, endpoint, key string, out any) bool {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		metrics.CacheMisses.WithLabelValues(endpoint).Inc()
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	metrics.CacheHits.WithLabelValues(endpoint).Inc()
	return true
}

func (c *CachedClient) toCache(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
