package handler

import (
	"net/http"

	"github.com/verumrexo/tip-harmony/internal/apierror"
	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/service"

	"github.com/gin-gonic/gin"
)

type DrinkOrdersHandler struct{ svc service.DrinkOrderService }

func NewDrinkOrdersHandler(svc service.DrinkOrderService) *DrinkOrdersHandler {
	return &DrinkOrdersHandler{svc: svc}
}

// Create godoc
// @Summary      Record a drink write-off
// @Description  Persists one write-off submission. Zero-quantity items are dropped.
// @Tags         drink-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateDrinkOrderRequest true "Items"
// @Success      201  {object} dto.DrinkOrderResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/drink-orders [post]
func (h *DrinkOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateDrinkOrderRequest
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

// Report godoc
// @Summary      Monthly write-off report
// @Description  Aggregated, volume-stacked and category-sorted report for one calendar month (defaults to the current one).
// @Tags         drink-orders
// @Produce      json
// @Security     BearerAuth
// @Param        month query int false "Month 1-12"
// @Param        year  query int false "Year"
// @Success      200 {object} dto.DrinkReportResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/drink-orders/report [get]
func (h *DrinkOrdersHandler) Report(c *gin.Context) {
	var q dto.ReportQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.MonthlyReport(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendReport godoc
// @Summary      Email the monthly report
// @Description  Queues the report for async delivery to the configured (or given) address.
// @Tags         drink-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SendReportRequest true "Period and optional recipient"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/drink-orders/report/send [post]
func (h *DrinkOrdersHandler) SendReport(c *gin.Context) {
	var req dto.SendReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SendReport(c.Request.Context(), req.Month, req.Year, req.Email); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}
