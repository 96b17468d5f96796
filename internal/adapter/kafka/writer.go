package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/config"
	"github.com/couchcryptid/metar-decode-service/internal/metar"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces decoded observations to the sink topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple observations to the sink Kafka
// topic in a single WriteMessages call for efficiency.
func (w *Writer) LoadBatch(ctx context.Context, obs []metar.StationObservation) error {
	if len(obs) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(obs))
	for i := range obs {
		msg, err := serializeToMessage(obs[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a StationObservation into a Kafka message.
// Messages are keyed by station so one station's observations stay ordered
// within a partition.
func serializeToMessage(obs metar.StationObservation) (kafkago.Message, error) {
	data, err := json.Marshal(obs)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(obs.Station),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(obs.Station)},
			{Key: "decoded_at", Value: []byte(obs.Observation.DecodedAt.Format(time.RFC3339))},
		},
	}, nil
}

// ReportWriter publishes raw report envelopes to the source topic. The
// collector uses it to feed the decode pipeline.
type ReportWriter struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewReportWriter creates a Kafka producer for the configured source topic.
func NewReportWriter(cfg *config.Config, logger *slog.Logger) *ReportWriter {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSourceTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &ReportWriter{writer: w, logger: logger}
}

// Publish serializes raw report envelopes onto the source topic.
func (w *ReportWriter) Publish(ctx context.Context, reports []metar.ReportMessage) error {
	if len(reports) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(reports))
	for i, report := range reports {
		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("serialize report: %w", err)
		}
		msgs[i] = kafkago.Message{
			Key:   []byte(report.Station),
			Value: data,
		}
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *ReportWriter) Close() error {
	return w.writer.Close()
}
