package api

import (
	"net/http"

	"fleet-dispatch/internal/handler/httperr"
	"fleet-dispatch/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError renders err with the status of its kind. Messages of
// classified errors are safe to show; anything else is hidden.
func abortWithUsecaseError(c *gin.Context, err error) {
	if errs.IsTransient(err) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		return
	}

	switch errs.KindOf(err) {
	case errs.KindValidation:
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.KindForbidden:
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.KindNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.KindConflict:
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func principalMissing(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no principal in context"), "Unauthorized", nil)
}
