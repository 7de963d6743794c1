package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ukhamba-backend/internal/models"
	"ukhamba-backend/internal/service"
	"ukhamba-backend/pkg/logger"
)

type NotifyHandler struct {
	notificationService *service.NotificationService
}

func NewNotifyHandler(notificationService *service.NotificationService) *NotifyHandler {
	return &NotifyHandler{notificationService: notificationService}
}

func (h *NotifyHandler) Contact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.notificationService.Contact(c.Request.Context(), req)
	h.respond(c, "contact", receipt, err)
}

func (h *NotifyHandler) Donation(c *gin.Context) {
	var req models.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.notificationService.Donation(c.Request.Context(), req)
	h.respond(c, "donation", receipt, err)
}

func (h *NotifyHandler) Volunteer(c *gin.Context) {
	var req models.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.notificationService.Volunteer(c.Request.Context(), req)
	h.respond(c, "volunteer", receipt, err)
}

func (h *NotifyHandler) Newsletter(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.notificationService.Newsletter(c.Request.Context(), req)
	h.respond(c, "newsletter", receipt, err)
}

func (h *NotifyHandler) respond(c *gin.Context, kind string, receipt service.SendReceipt, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"notificationId": receipt.NotificationID,
			"confirmationId": receipt.ConfirmationID,
		})
	case errors.Is(err, service.ErrEmailDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email notifications are not configured"})
	case errors.Is(err, service.ErrPartialSend):
		// One leg was delivered; report what got through rather than
		// pretending the whole operation failed.
		logger.Error(err, "Partial notification send", map[string]interface{}{"form": kind})
		c.JSON(http.StatusBadGateway, gin.H{
			"error":          err.Error(),
			"notificationId": receipt.NotificationID,
			"confirmationId": receipt.ConfirmationID,
		})
	case errors.Is(err, context.Canceled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "request canceled"})
	default:
		logger.Error(err, "Failed to send notification", map[string]interface{}{"form": kind})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notification"})
	}
}
