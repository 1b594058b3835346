package api

import (
	"net/http"

	reqdto "fleet-dispatch/internal/handler/dto/request"
	resdto "fleet-dispatch/internal/handler/dto/response"
	"fleet-dispatch/internal/handler/httperr"
	"fleet-dispatch/internal/handler/middleware"
	"fleet-dispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	cmds commands.RatingCommands
}

func NewRatingHandler(cmds commands.RatingCommands) *RatingHandler {
	return &RatingHandler{cmds: cmds}
}

// @Summary Rate an operator
// @Description Allowed once the customer holds a reservation with the operator
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRatingRequest true "Rating"
// @Success 201 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		principalMissing(c)
		return
	}
	var req reqdto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Submit(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRating(created))
}
