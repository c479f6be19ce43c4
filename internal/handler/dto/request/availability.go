package request

import (
	"time"

	"reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// CollisionCheckRequest describes a proposed span. Missing start or end is accepted and
// reported as no collision.
type CollisionCheckRequest struct {
	Start               *time.Time `json:"start"`
	End                 *time.Time `json:"end"`
	BufferBeforeMinutes *int32     `json:"bufferBeforeMinutes" binding:"omitempty,min=0,max=1440"`
	BufferAfterMinutes  *int32     `json:"bufferAfterMinutes" binding:"omitempty,min=0,max=1440"`
	Type                string     `json:"type"`
	ExcludeID           *uuid.UUID `json:"excludeId,omitempty"`
}

func (r CollisionCheckRequest) ToCandidate() (reservation.Candidate, error) {
	typ, err := reservation.ParseType(r.Type)
	if err != nil {
		return reservation.Candidate{}, err
	}

	c := reservation.Candidate{
		Type:    typ,
		Buffers: reservation.NewBuffers(minutes(r.BufferBeforeMinutes), minutes(r.BufferAfterMinutes)),
	}
	if r.Start != nil {
		c.Start = *r.Start
	}
	if r.End != nil {
		c.End = *r.End
	}
	return c, nil
}

// minutes treats an absent buffer as zero.
func minutes(v *int32) time.Duration {
	if v == nil {
		return 0
	}
	return time.Duration(*v) * time.Minute
}
