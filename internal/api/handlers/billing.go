package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler serves billing KPIs to platform administrators
type BillingHandler struct {
	service service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetKPIs handles GET /api/v1/admin/billing/kpis
// @Summary Billing KPIs
// @Description MRR, ARR, active subscriptions, 30-day churn and per-plan breakdown
// @Tags admin
// @Produce json
// @Success 200 {object} service.BillingKPIResponse
// @Failure 403 {object} ErrorResponse "Super admin required"
// @Security BearerAuth
// @Router /admin/billing/kpis [get]
func (h *BillingHandler) GetKPIs(c *gin.Context) {
	kpis, err := h.service.KPIs()
	if err != nil {
		respondError(c, err, "Failed to compute billing KPIs")
		return
	}

	c.JSON(http.StatusOK, kpis)
}
