package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
)

// ReportTransformer implements Transformer using the metar decoder.
type ReportTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a ReportTransformer.
func NewTransformer(logger *slog.Logger) *ReportTransformer {
	return &ReportTransformer{logger: logger}
}

func (t *ReportTransformer) Transform(_ context.Context, raw metar.RawEvent) (metar.StationObservation, error) {
	obs, err := metar.DecodeRawEvent(raw)
	if err != nil {
		return metar.StationObservation{}, err
	}

	t.logger.Debug("report decoded",
		"station", obs.Station,
		"id", obs.ID,
		"observed_at", obs.Observation.ObservedAt,
	)
	return obs, nil
}
