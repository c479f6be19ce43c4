//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/usecase/commands"
	"reservation-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)

// recorder counts mutate calls per id and fails them according to script.
type recorder struct {
	mu     sync.Mutex
	calls  map[uuid.UUID]int
	script map[uuid.UUID][]error
}

func newRecorder() *recorder {
	return &recorder{calls: map[uuid.UUID]int{}, script: map[uuid.UUID][]error{}}
}

func (r *recorder) fail(id uuid.UUID, results ...error) {
	r.script[id] = results
}

func (r *recorder) mutate(_ context.Context, id uuid.UUID, _ reservation.OccurrencePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.calls[id]
	r.calls[id] = n + 1
	if n < len(r.script[id]) {
		return r.script[id][n]
	}
	return nil
}

func (r *recorder) callsFor(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[id]
}

func confirmedOccurrences(n int) []reservation.Occurrence {
	return builder.NewOccurrenceBuilder().
		With(func(b *builder.OccurrenceBuilder) { b.Begin = now.Add(24 * time.Hour) }).
		BuildMany(n)
}

func ids(occ []reservation.Occurrence) []uuid.UUID {
	out := make([]uuid.UUID, len(occ))
	for i, o := range occ {
		out[i] = o.ID
	}
	return out
}

func newUseCase(opts commands.BatchOptions) commands.SeriesBatchCommands {
	return commands.NewSeriesBatchUseCase(nil, nil, nil, nil, clock.NewMockClock(now), opts)
}

var denyPatch = func() reservation.OccurrencePatch {
	s := reservation.StateDenied
	return reservation.OccurrencePatch{State: &s}
}()

func TestRunBatch(t *testing.T) {
	seriesID := uuid.New()

	t.Run("all items succeed", func(t *testing.T) {
		occ := confirmedOccurrences(25)
		rec := newRecorder()

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, seriesID, result.SeriesID)
		if diff := cmp.Diff(ids(occ), result.Succeeded); diff != "" {
			t.Errorf("succeeded mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, result.Failed)
		assert.Empty(t, result.Untouched)
	})

	t.Run("probe failure stops the remainder", func(t *testing.T) {
		occ := confirmedOccurrences(15)
		rec := newRecorder()
		rec.fail(occ[2].ID, commands.NewValidationError(errors.New("already allocated")))

		result, err := newUseCase(commands.BatchOptions{ProbeSize: 10}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		assert.False(t, result.OK())
		assert.True(t, result.ProbeFailed)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, occ[2].ID, result.Failed[0].ReservationID)
		assert.Equal(t, commands.MutationErrorValidation, result.Failed[0].Kind)
		assert.Equal(t, commands.PhaseProbe, result.Failed[0].Phase)
		assert.Equal(t, 1, result.Failed[0].Attempts)
		assert.Len(t, result.Succeeded, 9)
		assert.Equal(t, ids(occ[10:]), result.Untouched)
		for _, o := range occ[10:] {
			assert.Zero(t, rec.callsFor(o.ID))
		}
	})

	t.Run("transient failure is retried once and recovers", func(t *testing.T) {
		occ := confirmedOccurrences(3)
		rec := newRecorder()
		rec.fail(occ[1].ID, commands.NewTransientError(errors.New("connection reset")))

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Contains(t, result.Succeeded, occ[1].ID)
		assert.Equal(t, 2, rec.callsFor(occ[1].ID))
		assert.Equal(t, 1, rec.callsFor(occ[0].ID))
	})

	t.Run("second transient failure is permanent", func(t *testing.T) {
		occ := confirmedOccurrences(3)
		rec := newRecorder()
		transient := commands.NewTransientError(errors.New("timeout"))
		rec.fail(occ[0].ID, transient, transient)

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.MutationErrorPermanent, result.Failed[0].Kind)
		assert.Equal(t, 2, result.Failed[0].Attempts)
		assert.Equal(t, 2, rec.callsFor(occ[0].ID))
	})

	t.Run("validation failure after transient failure is permanent", func(t *testing.T) {
		occ := confirmedOccurrences(1)
		rec := newRecorder()
		rec.fail(occ[0].ID, commands.NewTransientError(errors.New("timeout")), commands.NewValidationError(errors.New("denied")))

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.MutationErrorPermanent, result.Failed[0].Kind)
	})

	t.Run("untagged errors are not retried", func(t *testing.T) {
		occ := confirmedOccurrences(1)
		rec := newRecorder()
		rec.fail(occ[0].ID, errors.New("boom"))

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.MutationErrorValidation, result.Failed[0].Kind)
		assert.Equal(t, 1, rec.callsFor(occ[0].ID))
	})

	t.Run("remainder failure does not mark the probe", func(t *testing.T) {
		occ := confirmedOccurrences(12)
		rec := newRecorder()
		rec.fail(occ[11].ID, commands.NewValidationError(errors.New("bad interval")))

		result, err := newUseCase(commands.BatchOptions{ProbeSize: 10}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		assert.False(t, result.ProbeFailed)
		assert.False(t, result.OK())
		assert.Len(t, result.Succeeded, 11)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, commands.PhaseRemainder, result.Failed[0].Phase)
		assert.Empty(t, result.Untouched)
	})

	t.Run("ineligible occurrences are skipped", func(t *testing.T) {
		occ := confirmedOccurrences(3)
		occ[0].Begin = now.Add(-time.Hour)
		occ[1].State = reservation.StateDenied
		rec := newRecorder()

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, occ, denyPatch, rec.mutate)

		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, []uuid.UUID{occ[0].ID, occ[1].ID}, result.Skipped)
		assert.Equal(t, []uuid.UUID{occ[2].ID}, result.Succeeded)
		assert.Zero(t, rec.callsFor(occ[0].ID))
		assert.Zero(t, rec.callsFor(occ[1].ID))
	})

	t.Run("pool size bounds concurrent calls", func(t *testing.T) {
		occ := confirmedOccurrences(40)
		var inFlight, peak atomic.Int32
		mutate := func(context.Context, uuid.UUID, reservation.OccurrencePatch) error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		}

		result, err := newUseCase(commands.BatchOptions{ProbeSize: 5, PoolSize: 3}).RunBatch(context.Background(), seriesID, occ, denyPatch, mutate)

		require.NoError(t, err)
		assert.Len(t, result.Succeeded, 40)
		assert.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("cancelled caller does not cancel mutations", func(t *testing.T) {
		occ := confirmedOccurrences(2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mutate := func(ctx context.Context, _ uuid.UUID, _ reservation.OccurrencePatch) error {
			return ctx.Err()
		}

		result, err := newUseCase(commands.BatchOptions{}).RunBatch(ctx, seriesID, occ, denyPatch, mutate)

		require.NoError(t, err)
		assert.True(t, result.OK())
	})

	t.Run("nil mutate is rejected", func(t *testing.T) {
		_, err := newUseCase(commands.BatchOptions{}).RunBatch(context.Background(), seriesID, nil, denyPatch, nil)

		assert.True(t, errs.Is(err, errs.ErrInvalidBatchRequest))
	})
}

type requestIDKey struct{}

// ctxHandler keeps the request id seen on each record's context.
type ctxHandler struct {
	mu   sync.Mutex
	seen map[string]any
}

func (h *ctxHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[r.Message] = ctx.Value(requestIDKey{})
	return nil
}

func (h *ctxHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *ctxHandler) WithGroup(string) slog.Handler      { return h }

func TestRunBatchLogsWithRequestContext(t *testing.T) {
	h := &ctxHandler{seen: map[string]any{}}
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })

	occ := confirmedOccurrences(2)
	rec := newRecorder()
	transient := commands.NewTransientError(errors.New("timeout"))
	rec.fail(occ[1].ID, transient, transient)
	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-42")

	result, err := newUseCase(commands.BatchOptions{}).RunBatch(ctx, uuid.New(), occ, denyPatch, rec.mutate)

	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, "req-42", h.seen["occurrence mutation failed permanently"])
}

type stubReader struct {
	occurrences []reservation.Occurrence
	err         error
}

func (s stubReader) FetchSeriesOccurrences(context.Context, uuid.UUID) ([]reservation.Occurrence, error) {
	return s.occurrences, s.err
}

type stubMutator struct{ rec *recorder }

func (s stubMutator) MutateOccurrence(ctx context.Context, id uuid.UUID, p reservation.OccurrencePatch) error {
	return s.rec.mutate(ctx, id, p)
}

type captureSink struct {
	published []*commands.BatchResult
	err       error
}

func (s *captureSink) Publish(_ context.Context, r *commands.BatchResult) error {
	s.published = append(s.published, r)
	return s.err
}

func TestEditSeries(t *testing.T) {
	seriesID := uuid.New()

	t.Run("runs the batch and publishes the result", func(t *testing.T) {
		occ := confirmedOccurrences(4)
		rec := newRecorder()
		sink := &captureSink{err: errors.New("broker down")}
		uc := commands.NewSeriesBatchUseCase(stubReader{occurrences: occ}, stubMutator{rec: rec}, nil, sink, clock.NewMockClock(now), commands.BatchOptions{})

		result, err := uc.EditSeries(context.Background(), seriesID, denyPatch)

		require.NoError(t, err)
		assert.Len(t, result.Succeeded, 4)
		require.Len(t, sink.published, 1)
		assert.Same(t, result, sink.published[0])
	})

	t.Run("invalid patch", func(t *testing.T) {
		uc := commands.NewSeriesBatchUseCase(stubReader{}, stubMutator{rec: newRecorder()}, nil, nil, clock.NewMockClock(now), commands.BatchOptions{})

		_, err := uc.EditSeries(context.Background(), seriesID, reservation.OccurrencePatch{})

		assert.True(t, errs.Is(err, errs.ErrInvalidPatch))
	})

	t.Run("unknown series", func(t *testing.T) {
		uc := commands.NewSeriesBatchUseCase(stubReader{err: errs.ErrSeriesNotFound}, stubMutator{rec: newRecorder()}, nil, nil, clock.NewMockClock(now), commands.BatchOptions{})

		_, err := uc.EditSeries(context.Background(), seriesID, denyPatch)

		assert.True(t, errs.Is(err, errs.ErrSeriesNotFound))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, commands.MutationErrorTransientNetwork, commands.KindOf(errs.Wrap(commands.NewTransientError(errors.New("x")), "ctx")))
	assert.Equal(t, commands.MutationErrorValidation, commands.KindOf(errors.New("plain")))
}

func TestBatchResultOutcome(t *testing.T) {
	assert.Equal(t, "ok", (&commands.BatchResult{}).Outcome())
	assert.Equal(t, "partial", (&commands.BatchResult{Failed: []commands.ItemFailure{{}}}).Outcome())
	assert.Equal(t, "probe_failed", (&commands.BatchResult{ProbeFailed: true, Failed: []commands.ItemFailure{{}}}).Outcome())
}
