package request

import (
	"time"

	"reservation-engine/internal/domain/reservation"
)

type LifecycleActionsRequest struct {
	State string     `json:"state" binding:"required"`
	End   *time.Time `json:"end"`
}

func (r LifecycleActionsRequest) ToDomain() (reservation.State, time.Time, error) {
	state, err := reservation.ParseState(r.State)
	if err != nil {
		return "", time.Time{}, err
	}
	var end time.Time
	if r.End != nil {
		end = *r.End
	}
	return state, end, nil
}
