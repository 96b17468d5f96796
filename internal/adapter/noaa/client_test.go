package noaa

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, timeout, testMetrics(), discardLogger())
}

func TestClient_FetchLatest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/metar", r.URL.Path)
		assert.Equal(t, "KJFK", r.URL.Query().Get("ids"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		resp := []metarResponse{
			{
				ICAOID:  "KJFK",
				RawOb:   "KJFK 261251Z 21016KT 10SM OVC250 01/M04 A3010",
				ObsTime: time.Date(2024, 4, 26, 12, 51, 0, 0, time.UTC).Unix(),
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	msg, err := c.FetchLatest(context.Background(), "KJFK")
	require.NoError(t, err)

	assert.Equal(t, "KJFK", msg.Station)
	assert.Equal(t, "KJFK 261251Z 21016KT 10SM OVC250 01/M04 A3010", msg.RawOb)
	assert.Equal(t, time.Date(2024, 4, 26, 12, 51, 0, 0, time.UTC), msg.ObservedAt)
}

func TestClient_FetchLatest_ReportTimeFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := []metarResponse{
			{
				ICAOID:     "EFHK",
				RawOb:      "EFHK 261250Z 29008KT CAVOK 12/07 Q1021",
				ReportTime: "2024-04-26 12:50:00",
			},
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	msg, err := c.FetchLatest(context.Background(), "EFHK")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 26, 12, 50, 0, 0, time.UTC), msg.ObservedAt)
}

func TestClient_FetchLatest_NoReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		require.NoError(t, json.NewEncoder(w).Encode([]metarResponse{}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.FetchLatest(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoReport))
}

func TestClient_FetchLatest_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.FetchLatest(context.Background(), "KJFK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_FetchLatest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.FetchLatest(context.Background(), "KJFK")
	require.Error(t, err)
}
