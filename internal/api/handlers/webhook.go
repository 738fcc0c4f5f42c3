package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles HTTP requests for webhooks and their deliveries
type WebhookHandler struct {
	service service.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(service service.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// CreateWebhook handles POST /api/v1/organizations/:id/webhooks
// @Summary Register a webhook
// @Description The signing secret is returned only in this response and on rotation
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhook body service.CreateWebhookRequest true "Endpoint and events"
// @Success 201 {object} service.WebhookSecretResponse
// @Failure 400 {object} ErrorResponse "Invalid URL or unknown event"
// @Security BearerAuth
// @Router /organizations/{id}/webhooks [post]
func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.CreateWebhookRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(actorFrom(c), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create webhook")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListWebhooks handles GET /api/v1/organizations/:id/webhooks
// @Summary List webhooks
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.WebhookResponse
// @Security BearerAuth
// @Router /organizations/{id}/webhooks [get]
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	hooks, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err, "Failed to list webhooks")
		return
	}

	c.JSON(http.StatusOK, hooks)
}

// GetWebhook handles GET /api/v1/organizations/:id/webhooks/:webhookId
// @Summary Get a webhook
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Success 200 {object} service.WebhookResponse
// @Failure 404 {object} ErrorResponse "Webhook not found"
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId} [get]
func (h *WebhookHandler) GetWebhook(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}

	hook, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get webhook")
		return
	}

	c.JSON(http.StatusOK, hook)
}

// UpdateWebhook handles PUT /api/v1/organizations/:id/webhooks/:webhookId
// @Summary Update a webhook
// @Description Re-activating a disabled webhook resets its failure count
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Param webhook body service.UpdateWebhookRequest true "Fields to update"
// @Success 200 {object} service.WebhookResponse
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId} [put]
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}
	var req service.UpdateWebhookRequest
	if !bindJSON(c, &req) {
		return
	}

	hook, err := h.service.Update(actorFrom(c), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update webhook")
		return
	}

	c.JSON(http.StatusOK, hook)
}

// DeleteWebhook handles DELETE /api/v1/organizations/:id/webhooks/:webhookId
// @Summary Delete a webhook
// @Tags webhooks
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Success 204 "Webhook deleted"
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId} [delete]
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}

	if err := h.service.Delete(actorFrom(c), orgID, id); err != nil {
		respondError(c, err, "Failed to delete webhook")
		return
	}

	c.Status(http.StatusNoContent)
}

// RotateSecret handles POST /api/v1/organizations/:id/webhooks/:webhookId/rotate-secret
// @Summary Rotate the signing secret
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Success 200 {object} service.WebhookSecretResponse
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId}/rotate-secret [post]
func (h *WebhookHandler) RotateSecret(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}

	resp, err := h.service.RotateSecret(actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to rotate webhook secret")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SendTest handles POST /api/v1/organizations/:id/webhooks/:webhookId/test
// @Summary Send a test event
// @Description Queues a webhook.test delivery to this endpoint
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Success 202 {object} service.DeliveryResponse
// @Failure 409 {object} ErrorResponse "Webhook is disabled"
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId}/test [post]
func (h *WebhookHandler) SendTest(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}

	delivery, err := h.service.SendTest(actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to send test event")
		return
	}

	c.JSON(http.StatusAccepted, delivery)
}

// ListDeliveries handles GET /api/v1/organizations/:id/webhooks/:webhookId/deliveries
// @Summary List deliveries
// @Description Newest first
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.DeliveryListResponse
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId}/deliveries [get]
func (h *WebhookHandler) ListDeliveries(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.ListDeliveries(orgID, id, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list deliveries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Redeliver handles POST /api/v1/organizations/:id/webhooks/:webhookId/deliveries/:deliveryId/redeliver
// @Summary Redeliver a delivery
// @Description Resets the delivery and queues it again with the original payload
// @Tags webhooks
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param webhookId path string true "Webhook ID (UUID)"
// @Param deliveryId path string true "Delivery ID (UUID)"
// @Success 202 {object} service.DeliveryResponse
// @Failure 409 {object} ErrorResponse "Delivery is already in progress"
// @Security BearerAuth
// @Router /organizations/{id}/webhooks/{webhookId}/deliveries/{deliveryId}/redeliver [post]
func (h *WebhookHandler) Redeliver(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "webhookId", "webhook")
	if !ok {
		return
	}
	deliveryID, ok := uuidParam(c, "deliveryId", "delivery")
	if !ok {
		return
	}

	delivery, err := h.service.Redeliver(actorFrom(c), orgID, id, deliveryID)
	if err != nil {
		respondError(c, err, "Failed to redeliver")
		return
	}

	c.JSON(http.StatusAccepted, delivery)
}
