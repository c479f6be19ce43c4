package commands

import (
	"context"
	"time"

	"reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type OccurrenceReader interface {
	FetchSeriesOccurrences(ctx context.Context, seriesID uuid.UUID) ([]reservation.Occurrence, error)
}

type OccurrenceMutator interface {
	MutateOccurrence(ctx context.Context, id uuid.UUID, p reservation.OccurrencePatch) error
}

type BatchMetrics interface {
	ObserveItem(phase string, kind string, attempts int)
	ObserveBatch(result *BatchResult, elapsed time.Duration)
}

// BatchResultSink receives every finished batch, e.g. to notify other services.
type BatchResultSink interface {
	Publish(ctx context.Context, result *BatchResult) error
}

type noopBatchMetrics struct{}

func NewNoopBatchMetrics() BatchMetrics { return noopBatchMetrics{} }

func (noopBatchMetrics) ObserveItem(string, string, int)          {}
func (noopBatchMetrics) ObserveBatch(*BatchResult, time.Duration) {}

type noopResultSink struct{}

func NewNoopResultSink() BatchResultSink { return noopResultSink{} }

func (noopResultSink) Publish(context.Context, *BatchResult) error { return nil }
