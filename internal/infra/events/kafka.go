package events

import (
	"context"
	"encoding/json"
	"time"

	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ItemFailureEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Phase         string    `json:"phase"`
	Kind          string    `json:"kind"`
	Attempts      int       `json:"attempts"`
	Message       string    `json:"message"`
}

// BatchResultEvent is the message body published for every finished series batch.
type BatchResultEvent struct {
	SeriesID    uuid.UUID          `json:"series_id"`
	Outcome     string             `json:"outcome"`
	Succeeded   []uuid.UUID        `json:"succeeded"`
	Failed      []ItemFailureEvent `json:"failed"`
	Skipped     []uuid.UUID        `json:"skipped"`
	Untouched   []uuid.UUID        `json:"untouched"`
	ProbeFailed bool               `json:"probe_failed"`
	FinishedAt  time.Time          `json:"finished_at"`
}

func NewBatchResultEvent(result *commands.BatchResult, finishedAt time.Time) BatchResultEvent {
	failed := make([]ItemFailureEvent, len(result.Failed))
	for i, f := range result.Failed {
		failed[i] = ItemFailureEvent{
			ReservationID: f.ReservationID,
			Phase:         f.Phase,
			Kind:          string(f.Kind),
			Attempts:      f.Attempts,
			Message:       f.Message,
		}
	}
	return BatchResultEvent{
		SeriesID:    result.SeriesID,
		Outcome:     result.Outcome(),
		Succeeded:   result.Succeeded,
		Failed:      failed,
		Skipped:     result.Skipped,
		Untouched:   result.Untouched,
		ProbeFailed: result.ProbeFailed,
		FinishedAt:  finishedAt.UTC(),
	}
}

// KafkaResultSink publishes batch results keyed by series id, so results of one series
// stay on one partition.
type KafkaResultSink struct {
	writer       MessageWriter
	clock        clock.Clock
	writeTimeout time.Duration
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaResultSink(writer MessageWriter, clk clock.Clock, writeTimeout time.Duration) *KafkaResultSink {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &KafkaResultSink{writer: writer, clock: clk, writeTimeout: writeTimeout}
}

func (s *KafkaResultSink) Publish(ctx context.Context, result *commands.BatchResult) error {
	now := s.clock.Now()
	value, err := json.Marshal(NewBatchResultEvent(result, now))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "marshal batch result"), errs.ErrPublishFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(result.SeriesID.String()),
		Value: value,
		Time:  now,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "write batch result for series %s", result.SeriesID), errs.ErrPublishFailed)
	}
	return nil
}

func (s *KafkaResultSink) Close() error {
	return s.writer.Close()
}
