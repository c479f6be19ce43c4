package api

import (
	"net/http"

	"reservation-engine/internal/handler/httperr"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// abortWithUseCaseError maps use case failures to HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrSeriesNotFound),
		infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrInvalidPatch),
		errs.Is(err, errs.ErrInvalidBatchRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case infra.IsKind(err, infra.KindUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
