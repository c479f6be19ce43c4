package api

import (
	"net/http"

	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LifecycleHandler struct {
	q queries.LifecycleQueries
}

func NewLifecycleHandler(q queries.LifecycleQueries) *LifecycleHandler {
	return &LifecycleHandler{q: q}
}

// @Summary Allowed actions
// @Description List the staff actions allowed for a reservation in its current state
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.LifecycleActionsRequest true "Reservation state and end"
// @Success 200 {object} resdto.LifecycleResponse
// @Failure 400 {object} map[string]string
// @Router /api/reservations/actions [post]
func (h *LifecycleHandler) Actions(c *gin.Context) {
	var req reqdto.LifecycleActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, end, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid state", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLifecycleView(h.q.Evaluate(state, end)))
}
