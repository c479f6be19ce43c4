package response

import (
	"reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemFailureResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Phase         string    `json:"phase"`
	Kind          string    `json:"kind"`
	Attempts      int       `json:"attempts"`
	Message       string    `json:"message"`
}

type BatchResultResponse struct {
	SeriesID    uuid.UUID             `json:"seriesId"`
	Outcome     string                `json:"outcome"`
	Succeeded   []uuid.UUID           `json:"succeeded"`
	Failed      []ItemFailureResponse `json:"failed"`
	Skipped     []uuid.UUID           `json:"skipped"`
	Untouched   []uuid.UUID           `json:"untouched"`
	ProbeFailed bool                  `json:"probeFailed"`
}

func FromBatchResult(r *commands.BatchResult) (*BatchResultResponse, error) {
	resp := &BatchResultResponse{}
	if err := copier.Copy(resp, r); err != nil {
		return nil, err
	}
	resp.Outcome = r.Outcome()
	for _, s := range []*[]uuid.UUID{&resp.Succeeded, &resp.Skipped, &resp.Untouched} {
		if *s == nil {
			*s = []uuid.UUID{}
		}
	}
	if resp.Failed == nil {
		resp.Failed = []ItemFailureResponse{}
	}
	return resp, nil
}
