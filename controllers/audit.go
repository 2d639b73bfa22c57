package controllers

import (
	"net/http"

	"webdev-order-api/config"
	"webdev-order-api/models"
	"webdev-order-api/utils"

	"github.com/gin-gonic/gin"
)

// GetAuditLogs lists audit entries (admin only), newest first.
func GetAuditLogs(c *gin.Context) {
	query := config.DB.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("target_entity"); entity != "" {
		query = query.Where("target_entity = ?", entity)
	}
	if targetID := c.Query("target_id"); targetID != "" {
		query = query.Where("target_id = ?", targetID)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}

	page, limit, offset := utils.ParsePageParams(c.Query("page"), c.Query("limit"))

	var entries []models.AuditLog
	if err := query.Order("created_at DESC, audit_id DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"audit_logs": entries,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}
