package controllers

import (
	"net/http"
	"time"

	"webdev-order-api/config"
	"webdev-order-api/models"
	"webdev-order-api/services"
	"webdev-order-api/utils"

	"github.com/gin-gonic/gin"
)

var validServiceTypes = map[string]bool{
	models.ServiceWebsite:     true,
	models.ServiceWebApp:      true,
	models.ServiceEcommerce:   true,
	models.ServiceMaintenance: true,
	models.ServiceOther:       true,
}

var validPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
	models.PriorityUrgent: true,
}

// Statuses in which the owning client may still edit or delete.
var ownerMutableStatuses = map[string]bool{
	models.StatusDraft:     true,
	models.StatusNeedsInfo: true,
}

var ownerDeletableStatuses = map[string]bool{
	models.StatusDraft:     true,
	models.StatusSubmitted: true,
	models.StatusNeedsInfo: true,
}

// GetApplications returns list of applications
func GetApplications(c *gin.Context) {
	userID, _ := c.Get("userID")

	query := config.DB.Preload("User").Preload("Assignee").
		Where("applications.delete_at IS NULL")

	// Clients only see their own applications
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	// Apply filters from query params
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if serviceType := c.Query("service_type"); serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if assignedTo := c.Query("assigned_to"); assignedTo != "" && isStaff(c) {
		query = query.Where("assigned_to = ?", assignedTo)
	}

	var total int64
	if err := query.Model(&models.Application{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	page, limit, offset := utils.ParsePageParams(c.Query("page"), c.Query("limit"))

	var applications []models.Application
	if err := query.Order("create_at DESC").Limit(limit).Offset(offset).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": models.ProjectApplications(applications),
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// GetApplication returns single application by ID
func GetApplication(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	userID, _ := c.Get("userID")

	query := config.DB.Preload("User").Preload("Assignee").
		Where("application_id = ? AND applications.delete_at IS NULL", id)

	// Check permission if not staff
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	var application models.Application
	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application":           models.ProjectApplication(application),
		"available_transitions": services.AvailableTransitions(application.Status),
	})
}

// CreateApplication creates a new application in draft
func CreateApplication(c *gin.Context) {
	type CreateApplicationRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		ServiceType string `json:"service_type" binding:"required"`
		Priority    string `json:"priority"`
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validServiceTypes[req.ServiceType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service type"})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !validPriorities[req.Priority] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	userID, _ := c.Get("userID")

	// Applications always start in draft; the transition executor owns every
	// later status change.
	now := time.Now()
	application := models.Application{
		UserID:      userID.(int),
		Title:       utils.SanitizeInput(req.Title),
		Description: utils.SanitizeInput(req.Description),
		ServiceType: req.ServiceType,
		Status:      models.StatusDraft,
		Priority:    req.Priority,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	services.RecordAudit(config.DB, services.AuditEntry{
		Action:       models.AuditApplicationCreate,
		UserID:       &application.UserID,
		TargetEntity: "application",
		TargetID:     &application.ApplicationID,
		NewValue:     map[string]interface{}{"status": application.Status, "title": application.Title},
		Request:      requestMetadataFrom(c),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application created successfully",
		"application": models.ProjectApplication(application),
	})
}

// UpdateApplication updates an existing application
func UpdateApplication(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	userID, _ := c.Get("userID")

	type UpdateApplicationRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find application
	var application models.Application
	if err := config.DB.Where("application_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	// Content is editable only while the client still owns the workflow step
	if !ownerMutableStatuses[application.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Application can no longer be edited"})
		return
	}

	oldTitle := application.Title

	// Update fields
	now := time.Now()
	if req.Title != "" {
		application.Title = utils.SanitizeInput(req.Title)
	}
	if req.Description != "" {
		application.Description = utils.SanitizeInput(req.Description)
	}
	if req.Priority != "" {
		if !validPriorities[req.Priority] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		application.Priority = req.Priority
	}
	application.UpdateAt = &now

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	services.RecordAudit(config.DB, services.AuditEntry{
		Action:       models.AuditApplicationUpdate,
		UserID:       &application.UserID,
		TargetEntity: "application",
		TargetID:     &application.ApplicationID,
		OldValue:     map[string]interface{}{"title": oldTitle},
		NewValue:     map[string]interface{}{"title": application.Title},
		Request:      requestMetadataFrom(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application updated successfully",
		"application": models.ProjectApplication(application),
	})
}

// DeleteApplication soft deletes an application. Owners may delete while the
// application is still in an early status; admins may delete at any time.
func DeleteApplication(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}
	userID, _ := c.Get("userID")

	query := config.DB.Where("application_id = ? AND delete_at IS NULL", id)
	if !isAdmin(c) {
		query = query.Where("user_id = ?", userID)
	}

	var application models.Application
	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if !isAdmin(c) && !ownerDeletableStatuses[application.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Application can no longer be deleted"})
		return
	}

	// Soft delete
	now := time.Now()
	application.DeleteAt = &now
	application.UpdateAt = &now

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	actorID := userID.(int)
	services.RecordAudit(config.DB, services.AuditEntry{
		Action:       models.AuditApplicationDelete,
		UserID:       &actorID,
		TargetEntity: "application",
		TargetID:     &application.ApplicationID,
		OldValue:     map[string]interface{}{"status": application.Status},
		Request:      requestMetadataFrom(c),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
