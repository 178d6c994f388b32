package handler

import (
	"net/http"

	"github.com/verumrexo/tip-harmony/internal/apierror"
	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/service"

	"github.com/gin-gonic/gin"
)

type CalculationsHandler struct{ svc service.CalculationService }

func NewCalculationsHandler(svc service.CalculationService) *CalculationsHandler {
	return &CalculationsHandler{svc: svc}
}

// Create godoc
// @Summary      Save a tip split
// @Description  Runs the allocation rule and persists the result as an immutable history record.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCalculationRequest true "Pool amount and headcounts"
// @Success      201  {object} dto.CalculationResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/calculations [post]
func (h *CalculationsHandler) Create(c *gin.Context) {
	var req dto.CreateCalculationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Tip split history
// @Description  Returns the full history, newest first.
// @Tags         calculations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CalculationResponse
// @Router       /v1/calculations [get]
func (h *CalculationsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list calculations"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Analytics godoc
// @Summary      Windowed analytics
// @Description  Daily trend, weekly pattern, monthly totals and amount distribution over the trailing window. Returns null analytics when there is no history.
// @Tags         calculations
// @Produce      json
// @Security     BearerAuth
// @Param        days query int false "Window size: 7, 14, 30, 90 or 365 (default 30)"
// @Success      200 {object} dto.AnalyticsResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/calculations/analytics [get]
func (h *CalculationsHandler) Analytics(c *gin.Context) {
	var q dto.AnalyticsQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.Analytics(c.Request.Context(), q.Days)
	if err != nil {
		if err == service.ErrInvalidWindow {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute analytics"))
		return
	}
	// resp is nil on empty history — "nothing to show", not an error.
	c.JSON(http.StatusOK, gin.H{"analytics": resp})
}
