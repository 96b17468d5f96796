package metar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ReportMessage is the source-topic JSON envelope published by the
// collector: one raw METAR plus the instant it was observed. Field names
// follow the aviationweather.gov METAR API.
type ReportMessage struct {
	Station    string    `json:"station"`
	RawOb      string    `json:"raw_ob"`
	ObservedAt time.Time `json:"observed_at"`
}

// StationObservation is the sink-topic representation: the decoded
// observation together with its station and provenance.
type StationObservation struct {
	ID          string      `json:"id"`
	Station     string      `json:"station"`
	RawReport   string      `json:"raw_report"`
	Observation Observation `json:"observation"`
}

// DecodeRawEvent deserializes a RawEvent's envelope and decodes the report
// it carries. A missing observation instant falls back to the message
// timestamp; a missing station falls back to the report's leading token.
func DecodeRawEvent(raw RawEvent) (StationObservation, error) {
	var msg ReportMessage
	if err := json.Unmarshal(raw.Value, &msg); err != nil {
		return StationObservation{}, fmt.Errorf("parse raw event: %w", err)
	}

	observedAt := msg.ObservedAt
	if observedAt.IsZero() {
		observedAt = raw.Timestamp
	}

	obs, err := DecodeReport(msg.RawOb, observedAt)
	if err != nil {
		return StationObservation{}, fmt.Errorf("decode report: %w", err)
	}

	station := strings.ToUpper(strings.TrimSpace(msg.Station))
	if station == "" {
		station = strings.Fields(msg.RawOb)[0]
	}

	return StationObservation{
		ID:          generateID(station, msg.RawOb, observedAt),
		Station:     station,
		RawReport:   msg.RawOb,
		Observation: obs,
	}, nil
}

// generateID produces a deterministic ID from the report's key fields.
// Reprocessing the same raw report yields the same ID, so downstream
// consumers can upsert idempotently and replays are safe.
func generateID(station, rawOb string, observedAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%s", station, rawOb, observedAt.UTC().Format(time.RFC3339))
	hash := sha256.Sum256([]byte(input))
	return strings.ToLower(station) + "-" + hex.EncodeToString(hash[:8])
}
