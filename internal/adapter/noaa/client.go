package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
	"github.com/couchcryptid/metar-decode-service/internal/observability"
)

// ErrNoReport is returned when the upstream API has no current report for a
// station.
var ErrNoReport = fmt.Errorf("no report available")

// Client implements metar.ReportSource against the aviationweather.gov
// data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an aviationweather.gov METAR client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchLatest retrieves the most recent report for one station.
func (c *Client) FetchLatest(ctx context.Context, station string) (metar.ReportMessage, error) {
	params := url.Values{
		"ids":    {station},
		"format": {"json"},
	}
	fullURL := fmt.Sprintf("%s/api/data/metar?%s", c.baseURL, params.Encode())

	start := time.Now()
	msg, err := c.doRequest(ctx, fullURL, station)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("error").Inc()
		return metar.ReportMessage{}, err
	}
	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	return msg, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL, station string) (metar.ReportMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return metar.ReportMessage{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return metar.ReportMessage{}, fmt.Errorf("fetch metar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return metar.ReportMessage{}, fmt.Errorf("aviationweather API error: status %d: %s", resp.StatusCode, body)
	}

	var reports []metarResponse
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return metar.ReportMessage{}, fmt.Errorf("decode response: %w", err)
	}

	if len(reports) == 0 || reports[0].RawOb == "" {
		return metar.ReportMessage{}, fmt.Errorf("%w: %s", ErrNoReport, station)
	}

	r := reports[0]
	id := strings.ToUpper(r.ICAOID)
	if id == "" {
		id = strings.ToUpper(station)
	}
	return metar.ReportMessage{
		Station:    id,
		RawOb:      r.RawOb,
		ObservedAt: r.observedAt(),
	}, nil
}

// aviationweather.gov API response. reportTime is a naive UTC timestamp;
// obsTime is Unix seconds and preferred when present.
type metarResponse struct {
	ICAOID     string `json:"icaoId"`
	RawOb      string `json:"rawOb"`
	ObsTime    int64  `json:"obsTime"`
	ReportTime string `json:"reportTime"`
}

func (r metarResponse) observedAt() time.Time {
	if r.ObsTime > 0 {
		return time.Unix(r.ObsTime, 0).UTC()
	}
	if t, err := time.Parse("2006-01-02 15:04:05", r.ReportTime); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
