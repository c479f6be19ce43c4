//go:build unit || e2e

package builder

import (
	"time"

	"reservation-engine/internal/domain/reservation"
	reqdto "reservation-engine/internal/handler/dto/request"
	"reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type SeriesEditBuilder struct {
	StartTime           string
	EndTime             string
	BufferBeforeMinutes int32
	BufferAfterMinutes  int32
	HandlingDetails     string
}

func NewSeriesEditBuilder() *SeriesEditBuilder {
	return &SeriesEditBuilder{
		StartTime:           "09:00",
		EndTime:             "10:30",
		BufferBeforeMinutes: 15,
		BufferAfterMinutes:  15,
		HandlingDetails:     "moved to morning",
	}
}

func (b *SeriesEditBuilder) With(mutate func(*SeriesEditBuilder)) *SeriesEditBuilder {
	mutate(b)
	return b
}

func (b *SeriesEditBuilder) BuildRequestDTO() reqdto.SeriesEditRequest {
	return reqdto.SeriesEditRequest{
		StartTime:           &b.StartTime,
		EndTime:             &b.EndTime,
		BufferBeforeMinutes: &b.BufferBeforeMinutes,
		BufferAfterMinutes:  &b.BufferAfterMinutes,
		HandlingDetails:     &b.HandlingDetails,
	}
}

func (b *SeriesEditBuilder) BuildPatch() reservation.OccurrencePatch {
	start := clockTime(b.StartTime)
	end := clockTime(b.EndTime)
	before := time.Duration(b.BufferBeforeMinutes) * time.Minute
	after := time.Duration(b.BufferAfterMinutes) * time.Minute
	details := b.HandlingDetails
	return reservation.OccurrencePatch{
		StartTimeOfDay:  &start,
		EndTimeOfDay:    &end,
		BufferBefore:    &before,
		BufferAfter:     &after,
		HandlingDetails: &details,
	}
}

func clockTime(hhmm string) time.Duration {
	t, _ := time.Parse("15:04", hhmm)
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// OccurrenceBuilder yields weekly confirmed occurrences starting at Begin.
type OccurrenceBuilder struct {
	Begin    time.Time
	Duration time.Duration
	State    reservation.State
}

func NewOccurrenceBuilder() *OccurrenceBuilder {
	return &OccurrenceBuilder{
		Begin:    time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC),
		Duration: time.Hour,
		State:    reservation.StateConfirmed,
	}
}

func (b *OccurrenceBuilder) With(mutate func(*OccurrenceBuilder)) *OccurrenceBuilder {
	mutate(b)
	return b
}

func (b *OccurrenceBuilder) BuildMany(n int) []reservation.Occurrence {
	out := make([]reservation.Occurrence, n)
	for i := range out {
		begin := b.Begin.AddDate(0, 0, 7*i)
		out[i] = reservation.Occurrence{
			ID:    uuid.New(),
			Begin: begin,
			End:   begin.Add(b.Duration),
			State: b.State,
		}
	}
	return out
}

// BuildBatchResult reports the first failed ids as probe failures and the rest as succeeded.
func BuildBatchResult(seriesID uuid.UUID, succeeded, failed int) *commands.BatchResult {
	r := &commands.BatchResult{SeriesID: seriesID}
	for range succeeded {
		r.Succeeded = append(r.Succeeded, uuid.New())
	}
	for range failed {
		r.Failed = append(r.Failed, commands.ItemFailure{
			ReservationID: uuid.New(),
			Phase:         commands.PhaseProbe,
			Kind:          commands.MutationErrorPermanent,
			Attempts:      2,
			Message:       "connection reset",
		})
	}
	return r
}
