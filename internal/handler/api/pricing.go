package api

import (
	"net/http"

	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Price quote
// @Description Prorated price of a reservation on a resource
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param request body reqdto.PriceQuoteRequest true "Duration and date"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/resources/{id}/price-quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	resourceID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.PriceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), resourceID, req.DurationMinutes, req.Date)
	if err != nil {
		abortWithUseCaseError(c, err, "Price quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
