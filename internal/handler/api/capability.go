package api

import (
	"net/http"

	reqdto "fleet-dispatch/internal/handler/dto/request"
	resdto "fleet-dispatch/internal/handler/dto/response"
	"fleet-dispatch/internal/handler/httperr"
	"fleet-dispatch/internal/handler/middleware"
	"fleet-dispatch/internal/usecase/commands"
	"fleet-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapabilityHandler struct {
	cmds commands.CapabilityCommands
	q    queries.CapabilityQueries
}

func NewCapabilityHandler(cmds commands.CapabilityCommands, q queries.CapabilityQueries) *CapabilityHandler {
	return &CapabilityHandler{cmds: cmds, q: q}
}

// @Summary Declare capability
// @Description Certify an operator for a variant (or the only variant of a resource)
// @Tags capabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CapabilityRequest true "Capability target"
// @Success 201 {object} resdto.CapabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/capabilities [post]
func (h *CapabilityHandler) Declare(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		principalMissing(c)
		return
	}
	var req reqdto.CapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	declared, err := h.cmds.Declare(c.Request.Context(), actor, req.ToTarget())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCapability(declared))
}

// @Summary Revoke capability
// @Description Remove a declared capability; existing reservations are kept
// @Tags capabilities
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CapabilityRequest true "Capability target"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/capabilities [delete]
func (h *CapabilityHandler) Revoke(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		principalMissing(c)
		return
	}
	var req reqdto.CapabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Revoke(c.Request.Context(), actor, req.ToTarget()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List operator capabilities
// @Tags capabilities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Operator ID"
// @Success 200 {object} resdto.OperatorCapabilitiesResponse
// @Failure 404 {object} httperr.Response
// @Router /api/operators/{id}/capabilities [get]
func (h *CapabilityHandler) ListForOperator(c *gin.Context) {
	view, err := h.q.ListFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromOperatorCapabilities(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
