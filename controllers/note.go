package controllers

import (
	"net/http"
	"time"

	"webdev-order-api/config"
	"webdev-order-api/models"
	"webdev-order-api/utils"

	"github.com/gin-gonic/gin"
)

// AddApplicationNote attaches an internal staff note to an application.
func AddApplicationNote(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	type NoteRequest struct {
		Body string `json:"body" binding:"required"`
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var application models.Application
	if err := config.DB.Where("application_id = ? AND delete_at IS NULL", id).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	userID, _ := c.Get("userID")

	note := models.ApplicationNote{
		ApplicationID: application.ApplicationID,
		AuthorID:      userID.(int),
		Body:          utils.SanitizeInput(req.Body),
		CreateAt:      time.Now(),
	}

	if err := config.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Note added successfully",
		"note":    note,
	})
}

// GetApplicationNotes lists internal notes for an application (staff only).
func GetApplicationNotes(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	var application models.Application
	if err := config.DB.Where("application_id = ? AND delete_at IS NULL", id).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var notes []models.ApplicationNote
	if err := config.DB.Preload("Author").
		Where("application_id = ? AND delete_at IS NULL", id).
		Order("create_at ASC").
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
		"total": len(notes),
	})
}

// DeleteApplicationNote soft deletes a note. Only the author or an admin may
// remove it.
func DeleteApplicationNote(c *gin.Context) {
	noteID, ok := paramInt(c, "note_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}
	userID, _ := c.Get("userID")

	var note models.ApplicationNote
	if err := config.DB.Where("note_id = ? AND delete_at IS NULL", noteID).
		First(&note).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	if note.AuthorID != userID.(int) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	now := time.Now()
	note.DeleteAt = &now
	note.UpdateAt = &now

	if err := config.DB.Save(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
