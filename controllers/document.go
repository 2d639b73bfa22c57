package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"webdev-order-api/config"
	"webdev-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSizeMB = 20

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// visibleApplication loads an application the current user may touch.
func visibleApplication(c *gin.Context, id int) (*models.Application, bool) {
	userID, _ := c.Get("userID")

	query := config.DB.Where("application_id = ? AND delete_at IS NULL", id)
	if !isStaff(c) {
		query = query.Where("user_id = ?", userID)
	}

	var application models.Application
	if err := query.First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return nil, false
	}
	return &application, true
}

// UploadApplicationFile stores one attachment for an application.
func UploadApplicationFile(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	application, ok := visibleApplication(c, id)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if fileHeader.Size > maxUploadSizeMB*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File exceeds maximum size of %d MB", maxUploadSizeMB),
		})
		return
	}

	userID, _ := c.Get("userID")

	// Stored name is a uuid so original names cannot collide or escape the
	// upload directory.
	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	destination := filepath.Join(uploadPath(), storedName)

	record := models.ApplicationFile{
		ApplicationID: application.ApplicationID,
		OriginalName:  filepath.Base(fileHeader.Filename),
		StoredPath:    destination,
		FileSize:      fileHeader.Size,
		MimeType:      fileHeader.Header.Get("Content-Type"),
		UploadedBy:    userID.(int),
		CreateAt:      time.Now(),
		UpdateAt:      time.Now(),
	}

	if !record.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	if err := c.SaveUploadedFile(fileHeader, destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	if err := config.DB.Create(&record).Error; err != nil {
		// Remove the orphan file so disk and table stay in sync.
		_ = os.Remove(destination)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"file":    record,
	})
}

// GetApplicationFiles lists attachments for an application.
func GetApplicationFiles(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	application, ok := visibleApplication(c, id)
	if !ok {
		return
	}

	var files []models.ApplicationFile
	if err := config.DB.Preload("Uploader").
		Where("application_id = ? AND delete_at IS NULL", application.ApplicationID).
		Order("create_at DESC").
		Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"files": files,
		"total": len(files),
	})
}

// DownloadApplicationFile streams a stored attachment.
func DownloadApplicationFile(c *gin.Context) {
	fileID, ok := paramInt(c, "file_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}

	var file models.ApplicationFile
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).
		First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if _, ok := visibleApplication(c, file.ApplicationID); !ok {
		return
	}

	c.FileAttachment(file.StoredPath, file.OriginalName)
}

// DeleteApplicationFile soft deletes an attachment. Only the uploader or an
// admin may remove it.
func DeleteApplicationFile(c *gin.Context) {
	fileID, ok := paramInt(c, "file_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}
	userID, _ := c.Get("userID")

	var file models.ApplicationFile
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).
		First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if file.UploadedBy != userID.(int) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	now := time.Now()
	file.DeleteAt = &now
	file.UpdateAt = now

	if err := config.DB.Save(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
