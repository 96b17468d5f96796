package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/metar"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("KJFK"),
		Value:     []byte(`{"station":"KJFK"}`),
		Topic:     "raw-metar-reports",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("noaa")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("KJFK"), raw.Key)
	assert.JSONEq(t, `{"station":"KJFK"}`, string(raw.Value))
	assert.Equal(t, "raw-metar-reports", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "noaa", raw.Headers["source"])
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	obs := metar.StationObservation{
		ID:        "kjfk-0123456789abcdef",
		Station:   "KJFK",
		RawReport: "KJFK 261251Z 21016KT 10SM OVC250 01/M04 A3010",
		Observation: metar.Observation{
			DecodedAt: now,
		},
	}

	msg, err := serializeToMessage(obs)
	require.NoError(t, err)

	assert.Equal(t, []byte("KJFK"), msg.Key)
	assert.Contains(t, string(msg.Value), `"station":"KJFK"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "station", msg.Headers[0].Key)
	assert.Equal(t, []byte("KJFK"), msg.Headers[0].Value)
	assert.Equal(t, "decoded_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}
