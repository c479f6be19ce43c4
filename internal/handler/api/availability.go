package api

import (
	"net/http"

	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check collisions
// @Description Check a proposed span against the unit's existing reservations, buffers included
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body reqdto.CollisionCheckRequest true "Candidate span"
// @Success 200 {object} resdto.CollisionResponse
// @Failure 400 {object} map[string]string
// @Router /api/units/{id}/collisions [post]
func (h *AvailabilityHandler) CheckCollision(c *gin.Context) {
	unitID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CollisionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	candidate, err := req.ToCandidate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation type", nil)
		return
	}

	result, err := h.q.CheckCollision(c.Request.Context(), unitID, candidate, req.ExcludeID)
	if err != nil {
		abortWithUseCaseError(c, err, "Collision check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollisionResult(result))
}
