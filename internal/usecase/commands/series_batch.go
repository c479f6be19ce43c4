package commands

import (
	"context"
	"log/slog"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	PhaseProbe     = "probe"
	PhaseRemainder = "remainder"

	DefaultProbeSize = 10
	DefaultPoolSize  = 16
)

// MutateFunc applies a patch to one occurrence. Failures should be tagged with NewValidationError
// or NewTransientError; anything else is treated as a validation failure.
type MutateFunc func(ctx context.Context, id uuid.UUID, p reservation.OccurrencePatch) error

type ItemFailure struct {
	ReservationID uuid.UUID
	Phase         string
	Kind          MutationErrorKind
	Attempts      int
	Message       string
}

type BatchResult struct {
	SeriesID  uuid.UUID
	Succeeded []uuid.UUID
	Failed    []ItemFailure
	// Skipped holds occurrences that were not eligible for the edit.
	Skipped []uuid.UUID
	// Untouched holds remainder occurrences that were never attempted because the probe failed.
	Untouched   []uuid.UUID
	ProbeFailed bool
}

func (r *BatchResult) OK() bool {
	return !r.ProbeFailed && len(r.Failed) == 0
}

// Outcome is "ok", "partial" or "probe_failed".
func (r *BatchResult) Outcome() string {
	switch {
	case r.ProbeFailed:
		return "probe_failed"
	case len(r.Failed) > 0:
		return "partial"
	default:
		return "ok"
	}
}

type BatchOptions struct {
	ProbeSize int
	PoolSize  int
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.ProbeSize <= 0 {
		o.ProbeSize = DefaultProbeSize
	}
	if o.PoolSize <= 0 {
		o.PoolSize = DefaultPoolSize
	}
	return o
}

type SeriesBatchCommands interface {
	// RunBatch applies p to every eligible occurrence. Partial failures are reported in the
	// result; an error is returned only for malformed requests.
	RunBatch(ctx context.Context, seriesID uuid.UUID, occurrences []reservation.Occurrence, p reservation.OccurrencePatch, mutate MutateFunc) (*BatchResult, error)
	EditSeries(ctx context.Context, seriesID uuid.UUID, p reservation.OccurrencePatch) (*BatchResult, error)
}

type seriesBatchUseCaseImpl struct {
	reader  OccurrenceReader
	mutator OccurrenceMutator
	metrics BatchMetrics
	sink    BatchResultSink
	clock   clock.Clock
	opts    BatchOptions
}

func NewSeriesBatchUseCase(
	reader OccurrenceReader,
	mutator OccurrenceMutator,
	metrics BatchMetrics,
	sink BatchResultSink,
	clk clock.Clock,
	opts BatchOptions,
) SeriesBatchCommands {
	if metrics == nil {
		metrics = NewNoopBatchMetrics()
	}
	if sink == nil {
		sink = NewNoopResultSink()
	}
	return &seriesBatchUseCaseImpl{
		reader:  reader,
		mutator: mutator,
		metrics: metrics,
		sink:    sink,
		clock:   clk,
		opts:    opts.withDefaults(),
	}
}

func (uc *seriesBatchUseCaseImpl) EditSeries(ctx context.Context, seriesID uuid.UUID, p reservation.OccurrencePatch) (*BatchResult, error) {
	if err := p.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPatch)
	}

	occurrences, err := uc.reader.FetchSeriesOccurrences(ctx, seriesID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch series occurrences")
	}

	result, err := uc.RunBatch(ctx, seriesID, occurrences, p, uc.mutator.MutateOccurrence)
	if err != nil {
		return nil, err
	}

	if err := uc.sink.Publish(context.WithoutCancel(ctx), result); err != nil {
		slog.WarnContext(ctx, "failed to publish batch result",
			"series_id", seriesID.String(),
			"error", err,
		)
	}
	return result, nil
}

type itemOutcome struct {
	id       uuid.UUID
	err      error
	kind     MutationErrorKind
	attempts int
}

func (uc *seriesBatchUseCaseImpl) RunBatch(
	ctx context.Context,
	seriesID uuid.UUID,
	occurrences []reservation.Occurrence,
	p reservation.OccurrencePatch,
	mutate MutateFunc,
) (*BatchResult, error) {
	if mutate == nil {
		return nil, errs.Wrap(errs.ErrInvalidBatchRequest, "mutate function is required")
	}

	// Started mutations always run to completion, even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	started := uc.clock.Now()

	result := &BatchResult{
		SeriesID:  seriesID,
		Succeeded: []uuid.UUID{},
		Failed:    []ItemFailure{},
		Skipped:   []uuid.UUID{},
		Untouched: []uuid.UUID{},
	}

	eligible := make([]uuid.UUID, 0, len(occurrences))
	for _, o := range occurrences {
		if o.EligibleForSeriesEdit(started) {
			eligible = append(eligible, o.ID)
		} else {
			result.Skipped = append(result.Skipped, o.ID)
		}
	}

	probeLen := min(uc.opts.ProbeSize, len(eligible))
	probe, remainder := eligible[:probeLen], eligible[probeLen:]

	slog.InfoContext(ctx, "series batch started",
		"series_id", seriesID.String(),
		"eligible", len(eligible),
		"skipped", len(result.Skipped),
		"probe", len(probe),
		"remainder", len(remainder),
	)

	if !uc.collect(ctx, result, PhaseProbe, uc.runPhase(ctx, seriesID, PhaseProbe, probe, p, mutate)) {
		result.ProbeFailed = true
		result.Untouched = append(result.Untouched, remainder...)
		slog.WarnContext(ctx, "probe failed, remainder not attempted",
			"series_id", seriesID.String(),
			"phase", PhaseProbe,
			"failed", len(result.Failed),
			"untouched", len(remainder),
		)
	} else if len(remainder) > 0 {
		uc.collect(ctx, result, PhaseRemainder, uc.runPhase(ctx, seriesID, PhaseRemainder, remainder, p, mutate))
	}

	elapsed := uc.clock.Now().Sub(started)
	uc.metrics.ObserveBatch(result, elapsed)
	slog.InfoContext(ctx, "series batch finished",
		"series_id", seriesID.String(),
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"untouched", len(result.Untouched),
		"duration", elapsed,
	)
	return result, nil
}

// runPhase mutates ids on a bounded pool. Outcomes keep the order of ids.
func (uc *seriesBatchUseCaseImpl) runPhase(
	ctx context.Context,
	seriesID uuid.UUID,
	phase string,
	ids []uuid.UUID,
	p reservation.OccurrencePatch,
	mutate MutateFunc,
) []itemOutcome {
	outcomes := make([]itemOutcome, len(ids))

	var g errgroup.Group
	g.SetLimit(uc.opts.PoolSize)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = uc.mutateWithRetry(ctx, seriesID, phase, id, p, mutate)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// mutateWithRetry retries a transient failure exactly once. A failed retry is permanent.
func (uc *seriesBatchUseCaseImpl) mutateWithRetry(
	ctx context.Context,
	seriesID uuid.UUID,
	phase string,
	id uuid.UUID,
	p reservation.OccurrencePatch,
	mutate MutateFunc,
) itemOutcome {
	out := itemOutcome{id: id, attempts: 1}
	out.err = mutate(ctx, id, p)
	if out.err == nil {
		return out
	}

	out.kind = KindOf(out.err)
	if out.kind != MutationErrorTransientNetwork {
		return out
	}

	slog.DebugContext(ctx, "retrying occurrence mutation",
		"series_id", seriesID.String(),
		"phase", phase,
		"reservation_id", id.String(),
		"error", out.err,
	)
	out.attempts++
	out.err = mutate(ctx, id, p)
	if out.err != nil {
		out.kind = MutationErrorPermanent
	}
	return out
}

// collect folds phase outcomes into result and reports whether every item succeeded.
func (uc *seriesBatchUseCaseImpl) collect(ctx context.Context, result *BatchResult, phase string, outcomes []itemOutcome) bool {
	ok := true
	for _, out := range outcomes {
		if out.err == nil {
			result.Succeeded = append(result.Succeeded, out.id)
			uc.metrics.ObserveItem(phase, "OK", out.attempts)
			continue
		}

		ok = false
		result.Failed = append(result.Failed, ItemFailure{
			ReservationID: out.id,
			Phase:         phase,
			Kind:          out.kind,
			Attempts:      out.attempts,
			Message:       out.err.Error(),
		})
		uc.metrics.ObserveItem(phase, string(out.kind), out.attempts)
		if out.kind == MutationErrorPermanent {
			slog.WarnContext(ctx, "occurrence mutation failed permanently",
				"series_id", result.SeriesID.String(),
				"phase", phase,
				"reservation_id", out.id.String(),
				"kind", string(out.kind),
				"attempts", out.attempts,
			)
		}
	}
	return ok
}
