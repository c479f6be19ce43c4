package reservation

import (
	"errors"
	"math"
	"time"

	"reservation-engine/internal/pkg/patch"
)

var (
	ErrEmptyPatch          = errors.New("patch does not change anything")
	ErrInvalidTimeOfDay    = errors.New("time of day must be within a single day")
	ErrInvalidPatchTimes   = errors.New("start time of day must be before end time of day")
	ErrInvalidPatchState   = errors.New("patch may only deny or return an occurrence to handling")
	ErrNegativeBuffer      = errors.New("buffer must not be negative")
	ErrBufferTooLong       = errors.New("buffer does not fit the stored seconds column")
	ErrDenyReasonWithState = errors.New("deny reason requires the DENIED state")
)

// MaxBuffer is the longest buffer the int4 seconds columns can hold.
const MaxBuffer = time.Duration(math.MaxInt32) * time.Second

// OccurrencePatch is the payload applied to every eligible occurrence of a series.
// Nil fields are left untouched. Times of day are offsets from local midnight.
type OccurrencePatch struct {
	StartTimeOfDay  *time.Duration
	EndTimeOfDay    *time.Duration
	BufferBefore    *time.Duration
	BufferAfter     *time.Duration
	State           *State
	DenyReasonID    *int32
	HandlingDetails *string
}

func (p OccurrencePatch) IsEmpty() bool {
	return !patch.Set(
		p.StartTimeOfDay != nil,
		p.EndTimeOfDay != nil,
		p.BufferBefore != nil,
		p.BufferAfter != nil,
		p.State != nil,
		p.DenyReasonID != nil,
		p.HandlingDetails != nil,
	)
}

func (p OccurrencePatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	for _, tod := range []*time.Duration{p.StartTimeOfDay, p.EndTimeOfDay} {
		if tod != nil && (*tod < 0 || *tod > 24*time.Hour) {
			return ErrInvalidTimeOfDay
		}
	}
	if p.StartTimeOfDay != nil && p.EndTimeOfDay != nil && *p.StartTimeOfDay >= *p.EndTimeOfDay {
		return ErrInvalidPatchTimes
	}
	if (p.BufferBefore != nil && *p.BufferBefore < 0) || (p.BufferAfter != nil && *p.BufferAfter < 0) {
		return ErrNegativeBuffer
	}
	if (p.BufferBefore != nil && *p.BufferBefore > MaxBuffer) || (p.BufferAfter != nil && *p.BufferAfter > MaxBuffer) {
		return ErrBufferTooLong
	}
	if p.State != nil && *p.State != StateDenied && *p.State != StateRequiresHandling {
		return ErrInvalidPatchState
	}
	if p.DenyReasonID != nil && (p.State == nil || *p.State != StateDenied) {
		return ErrDenyReasonWithState
	}
	return nil
}
