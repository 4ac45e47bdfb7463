package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/0xT4nj1r0/crowdplex/constant"
	"github.com/0xT4nj1r0/crowdplex/entities"
	"github.com/0xT4nj1r0/crowdplex/metrics"
)

// CinemaAPI is the upstream capability the ranking pipeline consumes. Every
// method either returns a typed payload or fails with a reason; retries and
// credential handling live behind this interface, not in the pipeline.
type CinemaAPI interface {
	LookupTheatres(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error)
	LookupShowtimes(ctx context.Context, theatreId, date string) (*entities.ShowtimesResponse, error)
	LookupSeatState(ctx context.Context, theatreId, sessionId string) (*entities.SeatStateResponse, error)
}

const (
	endpointTheatres  = "theatres"
	endpointShowtimes = "showtimes"
	endpointSeatState = "seat-state"
)

type Options struct {
	BaseURL  string
	APIKey   string
	ProxyURL string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// HTTPClient is the concrete CinemaAPI over net/http.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

func New(opts Options) (*HTTPClient, error) {
	transport, err := NewTransport(opts.ProxyURL)
	if err != nil {
		return nil, err
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = constant.DEFAULT_BASE_URL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = constant.DefaultRequestTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		client:  &http.Client{Transport: transport, Timeout: timeout},
		baseURL: baseURL,
		apiKey:  opts.APIKey,
		logger:  logger,
	}, nil
}

func (c *HTTPClient) LookupTheatres(ctx context.Context, area entities.SearchArea) (*entities.TheatresResponse, error) {
	url := fmt.Sprintf(constant.THEATRES_URL, c.baseURL, area.Latitude, area.Longitude, area.RadiusKm)
	var resp entities.TheatresResponse
	if err := c.getJSON(ctx, endpointTheatres, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) LookupShowtimes(ctx context.Context, theatreId, date string) (*entities.ShowtimesResponse, error) {
	url := fmt.Sprintf(constant.SHOWTIMES_URL, c.baseURL, theatreId, date)
	var resp entities.ShowtimesResponse
	if err := c.getJSON(ctx, endpointShowtimes, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) LookupSeatState(ctx context.Context, theatreId, sessionId string) (*entities.SeatStateResponse, error) {
	url := fmt.Sprintf(constant.SEATS_URL, c.baseURL, theatreId, sessionId)
	var resp entities.SeatStateResponse
	if err := c.getJSON(ctx, endpointSeatState, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint, url string, out any) error {
	metrics.UpstreamRequests.WithLabelValues(endpoint).Inc()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamFailures.WithLabelValues(endpoint, "0").Inc()
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamFailures.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		c.logger.Warn("upstream request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return &UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshaling %s response: %w", endpoint, err)
	}
	return nil
}
