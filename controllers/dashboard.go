package controllers

import (
	"net/http"

	"webdev-order-api/config"
	"webdev-order-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns per-status application counts, scoped to the
// caller's visibility.
func GetDashboardStats(c *gin.Context) {
	userID, _ := c.Get("userID")

	query := config.DB.Model(&models.Application{}).
		Where("delete_at IS NULL")
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	var rows []statusCount
	if err := query.Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	counts := make(map[string]int64, len(rows))
	var total int64
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"by_status": counts,
		"total":     total,
	})
}
