package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
)

// Publisher delivers raw report envelopes to the decode pipeline's source
// topic.
type Publisher interface {
	Publish(ctx context.Context, reports []metar.ReportMessage) error
}

// Collector fetches the latest report for each configured station and
// publishes the batch. It is driven by a cron schedule in the collector
// binary.
type Collector struct {
	stations  []string
	source    metar.ReportSource
	publisher Publisher
	logger    *slog.Logger
}

// New creates a collector over the given station list.
func New(stations []string, source metar.ReportSource, publisher Publisher, logger *slog.Logger) *Collector {
	return &Collector{
		stations:  stations,
		source:    source,
		publisher: publisher,
		logger:    logger,
	}
}

// RunOnce performs a single collection pass. A station that fails to fetch
// is logged and skipped so one flaky station cannot starve the rest; the
// pass fails only when publishing does.
func (c *Collector) RunOnce(ctx context.Context) error {
	reports := make([]metar.ReportMessage, 0, len(c.stations))
	for _, station := range c.stations {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		msg, err := c.source.FetchLatest(ctx, station)
		if err != nil {
			c.logger.Warn("fetch failed, skipping station",
				"station", station,
				"error", err)
			continue
		}
		reports = append(reports, msg)
	}

	if len(reports) == 0 {
		c.logger.Warn("collection pass produced no reports",
			"stations", len(c.stations))
		return nil
	}

	if err := c.publisher.Publish(ctx, reports); err != nil {
		return fmt.Errorf("publish reports: %w", err)
	}

	c.logger.Info("collection pass complete",
		"stations", len(c.stations),
		"published", len(reports))
	return nil
}
