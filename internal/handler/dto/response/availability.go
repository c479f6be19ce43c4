package response

import (
	"reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type CollisionResponse struct {
	Collides  bool        `json:"collides"`
	Conflicts []uuid.UUID `json:"conflicts"`
}

func FromCollisionResult(r reservation.CollisionResult) *CollisionResponse {
	conflicts := r.Conflicts
	if conflicts == nil {
		conflicts = []uuid.UUID{}
	}
	return &CollisionResponse{Collides: r.Collides, Conflicts: conflicts}
}
