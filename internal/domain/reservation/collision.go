package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a proposed span that has not been persisted. A zero Start or End marks an
// incomplete selection.
type Candidate struct {
	Start   time.Time
	End     time.Time
	Buffers Buffers
	Type    Type
}

func (c Candidate) IsComplete() bool {
	return !c.Start.IsZero() && !c.End.IsZero() && c.Start.Before(c.End)
}

// OccupiedSlot widens the candidate by its own buffers. The candidate's type never
// suppresses them.
func (c Candidate) OccupiedSlot() (TimeSlot, bool) {
	if !c.IsComplete() {
		return TimeSlot{}, false
	}
	return TimeSlot{start: c.Start, end: c.End}.Expand(c.Buffers), true
}

type CollisionResult struct {
	Collides  bool
	Conflicts []uuid.UUID
}

// DetectCollisions compares the candidate against every existing reservation except excludeID
// and returns all conflicting ids in input order. An incomplete candidate never collides.
func DetectCollisions(candidate Candidate, existing []*Reservation, excludeID *uuid.UUID) CollisionResult {
	result := CollisionResult{Conflicts: []uuid.UUID{}}

	span, ok := candidate.OccupiedSlot()
	if !ok {
		return result
	}

	for _, r := range existing {
		if r == nil {
			continue
		}
		if excludeID != nil && r.ID() == *excludeID {
			continue
		}
		if span.Overlaps(r.OccupiedSlot()) {
			result.Conflicts = append(result.Conflicts, r.ID())
		}
	}

	result.Collides = len(result.Conflicts) > 0
	return result
}
