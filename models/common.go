package models

import "time"

// ApplicationFile represents the application_files table.
type ApplicationFile struct {
	FileID        int        `gorm:"primaryKey;column:file_id" json:"file_id"`
	ApplicationID int        `gorm:"column:application_id" json:"application_id"`
	OriginalName  string     `gorm:"column:original_name" json:"original_name"`
	StoredPath    string     `gorm:"column:stored_path" json:"stored_path"`
	FileSize      int64      `gorm:"column:file_size" json:"file_size"`
	MimeType      string     `gorm:"column:mime_type" json:"mime_type"`
	UploadedBy    int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Uploader User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

// ApplicationNote is an internal staff-only note attached to an application.
type ApplicationNote struct {
	NoteID        int        `gorm:"primaryKey;column:note_id" json:"note_id"`
	ApplicationID int        `gorm:"column:application_id" json:"application_id"`
	AuthorID      int        `gorm:"column:author_id" json:"author_id"`
	Body          string     `gorm:"column:body" json:"body"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName overrides
func (ApplicationFile) TableName() string {
	return "application_files"
}

func (ApplicationNote) TableName() string {
	return "application_notes"
}

// Helper methods for file validation
func (f *ApplicationFile) IsValidDocumentType() bool {
	validTypes := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/zip",
		"image/jpeg",
		"image/png",
	}
	for _, validType := range validTypes {
		if f.MimeType == validType {
			return true
		}
	}
	return false
}

func (f *ApplicationFile) GetFileSizeInMB() float64 {
	return float64(f.FileSize) / (1024 * 1024)
}
