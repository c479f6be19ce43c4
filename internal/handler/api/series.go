package api

import (
	"net/http"

	reqdto "reservation-engine/internal/handler/dto/request"
	resdto "reservation-engine/internal/handler/dto/response"
	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeriesHandler struct {
	cmds commands.SeriesBatchCommands
}

func NewSeriesHandler(cmds commands.SeriesBatchCommands) *SeriesHandler {
	return &SeriesHandler{cmds: cmds}
}

// @Summary Edit series
// @Description Apply one change to every future confirmed occurrence of a series
// @Tags series
// @Accept json
// @Produce json
// @Param id path string true "Series ID"
// @Param request body reqdto.SeriesEditRequest true "Occurrence change"
// @Success 200 {object} resdto.BatchResultResponse
// @Success 207 {object} resdto.BatchResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/series/{id}/batch-edit [post]
func (h *SeriesHandler) BatchEdit(c *gin.Context) {
	seriesID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.SeriesEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid change", err.Error())
		return
	}

	result, err := h.cmds.EditSeries(c.Request.Context(), seriesID, patch)
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid change")
		return
	}
	resp, err := resdto.FromBatchResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}
