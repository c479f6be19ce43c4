package queries

import (
	"context"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// collisionLookaround widens the fetch window so neighbours whose buffers reach into the
// candidate are loaded too. It matches the longest buffer the API accepts (1440 minutes); a
// neighbour stored with a longer buffer is only seen when its raw slot is within the window.
const collisionLookaround = 24 * time.Hour

type ReservationReadStore interface {
	FetchReservationsForUnit(ctx context.Context, unitID uuid.UUID, from, to time.Time, states []reservation.State) ([]*reservation.Reservation, error)
}

type AvailabilityQueries interface {
	CheckCollision(ctx context.Context, unitID uuid.UUID, candidate reservation.Candidate, excludeID *uuid.UUID) (reservation.CollisionResult, error)
}

type availabilityQueriesImpl struct {
	store ReservationReadStore
}

func NewAvailabilityQueries(store ReservationReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) CheckCollision(
	ctx context.Context,
	unitID uuid.UUID,
	candidate reservation.Candidate,
	excludeID *uuid.UUID,
) (reservation.CollisionResult, error) {
	span, ok := candidate.OccupiedSlot()
	if !ok {
		return reservation.DetectCollisions(candidate, nil, excludeID), nil
	}

	existing, err := q.store.FetchReservationsForUnit(
		ctx,
		unitID,
		span.Start().Add(-collisionLookaround),
		span.End().Add(collisionLookaround),
		reservation.OccupyingStates,
	)
	if err != nil {
		return reservation.CollisionResult{}, errs.Wrap(err, "fetch reservations for unit")
	}

	return reservation.DetectCollisions(candidate, existing, excludeID), nil
}
