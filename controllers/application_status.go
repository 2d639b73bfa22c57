package controllers

import (
	"errors"
	"io"
	"net/http"

	"webdev-order-api/config"
	"webdev-order-api/models"
	"webdev-order-api/services"

	"github.com/gin-gonic/gin"
)

// UpdateApplicationStatus drives one forward transition through the
// transition executor.
func UpdateApplicationStatus(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	type StatusRequest struct {
		Status  string  `json:"status" binding:"required"`
		Comment *string `json:"comment"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	result, err := transitionService().ExecuteTransition(id, req.Status, actor, req.Comment, requestMetadataFrom(c))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	if !result.Changed {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Status unchanged",
			"changed":     false,
			"application": models.ProjectApplication(*result.Application),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated successfully",
		"changed":     true,
		"application": models.ProjectApplication(*result.Application),
		"transition":  result.Summary,
	})
}

// ResetApplicationToDraft is the admin-only reset path back to draft.
func ResetApplicationToDraft(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	type ResetRequest struct {
		Reason *string `json:"reason"`
	}

	// Reason is optional, so an empty body is fine; a body that is present
	// but unparsable is still a client error.
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	result, err := transitionService().ResetToDraft(id, actor, req.Reason, requestMetadataFrom(c))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application reset to draft",
		"application": models.ProjectApplication(*result.Application),
		"transition":  result.Summary,
	})
}

// GetAvailableTransitions lists the legal next statuses for an application.
func GetAvailableTransitions(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	userID, _ := c.Get("userID")

	query := config.DB.Where("application_id = ? AND delete_at IS NULL", id)
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	var application models.Application
	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                application.Status,
		"status_label":          models.StatusLabel(application.Status),
		"available_transitions": services.AvailableTransitions(application.Status),
	})
}

// GetApplicationHistory returns the status-history ledger in commit order.
func GetApplicationHistory(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	userID, _ := c.Get("userID")

	query := config.DB.Where("application_id = ? AND delete_at IS NULL", id)
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	var application models.Application
	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var history []models.ApplicationStatusHistory
	if err := config.DB.Preload("Actor").
		Where("application_id = ?", id).
		Order("created_at ASC, history_id ASC").
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// respondTransitionError maps the executor's typed errors to HTTP responses.
func respondTransitionError(c *gin.Context, err error) {
	if ite, ok := services.AsIllegalTransition(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":               ite.Error(),
			"current_status":      ite.From,
			"requested_status":    ite.To,
			"allowed_transitions": ite.Allowed,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status value"})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this transition"})
	case errors.Is(err, services.ErrConcurrentModification):
		// Retry-safe server-side race: must stay 5xx so retrying clients
		// can tell it apart from the non-retryable 409 illegal transition.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Application was modified concurrently, please retry"})
	default:
		// PersistenceError and IntegrityViolation are server-side; the
		// client may safely retry thanks to the idempotent no-op rule.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
	}
}
