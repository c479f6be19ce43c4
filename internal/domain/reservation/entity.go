package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id      uuid.UUID
	slot    TimeSlot
	state   State
	typ     Type
	buffers Buffers
}

func NewReservation(id uuid.UUID, slot TimeSlot, state State, typ Type, buffers Buffers) (*Reservation, error) {
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	if !state.IsValid() {
		return nil, ErrInvalidState
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}

	return &Reservation{
		id:      id,
		slot:    slot,
		state:   state,
		typ:     typ,
		buffers: buffers,
	}, nil
}

// OccupiedSlot is the span this reservation blocks for other bookings.
// Blocked reservations occupy only their raw slot; their configured buffers are ignored.
func (r *Reservation) OccupiedSlot() TimeSlot {
	if r.typ == TypeBlocked {
		return r.slot
	}
	return r.slot.Expand(r.buffers)
}

func (r *Reservation) IsBlocked() bool {
	return r.typ == TypeBlocked
}

func (r *Reservation) ID() uuid.UUID    { return r.id }
func (r *Reservation) Slot() TimeSlot   { return r.slot }
func (r *Reservation) State() State     { return r.state }
func (r *Reservation) Type() Type       { return r.typ }
func (r *Reservation) Buffers() Buffers { return r.buffers }
func (r *Reservation) Begin() time.Time { return r.slot.Start() }
func (r *Reservation) End() time.Time   { return r.slot.End() }

// Occurrence is one dated instance of a recurring series.
type Occurrence struct {
	ID    uuid.UUID
	Begin time.Time
	End   time.Time
	State State
}

// EligibleForSeriesEdit reports whether a series-wide edit may touch this occurrence:
// it must not have started yet and must be confirmed.
func (o Occurrence) EligibleForSeriesEdit(now time.Time) bool {
	if o.Begin.IsZero() {
		return false
	}
	return !o.Begin.Before(now) && o.State == StateConfirmed
}
