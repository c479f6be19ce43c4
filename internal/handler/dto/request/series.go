package request

import (
	"errors"
	"time"

	"reservation-engine/internal/domain/reservation"
)

var ErrInvalidTimeOfDay = errors.New("time of day must use HH:MM")

// SeriesEditRequest is applied to every eligible occurrence of a series.
// Times of day use HH:MM in the engine timezone; omitted fields are left unchanged.
type SeriesEditRequest struct {
	StartTime           *string `json:"startTime"`
	EndTime             *string `json:"endTime"`
	BufferBeforeMinutes *int32  `json:"bufferBeforeMinutes" binding:"omitempty,min=0,max=1440"`
	BufferAfterMinutes  *int32  `json:"bufferAfterMinutes" binding:"omitempty,min=0,max=1440"`
	State               *string `json:"state"`
	DenyReasonID        *int32  `json:"denyReasonId"`
	HandlingDetails     *string `json:"handlingDetails" binding:"omitempty,max=2000"`
}

func (r SeriesEditRequest) ToPatch() (reservation.OccurrencePatch, error) {
	var p reservation.OccurrencePatch

	var err error
	if p.StartTimeOfDay, err = parseTimeOfDay(r.StartTime); err != nil {
		return p, err
	}
	if p.EndTimeOfDay, err = parseTimeOfDay(r.EndTime); err != nil {
		return p, err
	}
	if r.BufferBeforeMinutes != nil {
		d := minutes(r.BufferBeforeMinutes)
		p.BufferBefore = &d
	}
	if r.BufferAfterMinutes != nil {
		d := minutes(r.BufferAfterMinutes)
		p.BufferAfter = &d
	}
	if r.State != nil {
		state, err := reservation.ParseState(*r.State)
		if err != nil {
			return p, err
		}
		p.State = &state
	}
	p.DenyReasonID = r.DenyReasonID
	p.HandlingDetails = r.HandlingDetails

	return p, p.Validate()
}

func parseTimeOfDay(v *string) (*time.Duration, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse("15:04", *v)
	if err != nil {
		return nil, ErrInvalidTimeOfDay
	}
	d := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	return &d, nil
}
