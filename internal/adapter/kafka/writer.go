package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-hazards/internal/config"
	"github.com/couchcryptid/weather-hazards/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes hazard reports to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes one report, keyed by its location label so lookups for the
// same place land on the same partition.
func (w *Writer) Publish(ctx context.Context, report domain.HazardReport) error {
	msg, err := serializeToMessage(report)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish hazard report: %w", err)
	}
	w.logger.Debug("hazard report published", "topic", w.writer.Topic, "key", string(msg.Key))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a HazardReport into a Kafka message.
func serializeToMessage(report domain.HazardReport) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize hazard report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.Label()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "hazard_count", Value: []byte(strconv.Itoa(report.Hazards))},
			{Key: "checked_at", Value: []byte(report.CheckedAt.Format(time.RFC3339))},
		},
	}, nil
}
