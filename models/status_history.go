package models

import "time"

// ApplicationStatusHistory tracks historical status changes for applications.
// Rows are append-only: they are written once per committed transition and
// never updated or deleted.
type ApplicationStatusHistory struct {
	HistoryID     int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	ApplicationID int       `gorm:"column:application_id" json:"application_id"`
	OldStatus     *string   `gorm:"column:old_status" json:"old_status"`
	NewStatus     string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy     int       `gorm:"column:changed_by" json:"changed_by"`
	Comment       *string   `gorm:"column:comment" json:"comment,omitempty"`
	IPAddress     *string   `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent     *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Actor User `gorm:"foreignKey:ChangedBy" json:"actor,omitempty"`
}

// TableName specifies the table for ApplicationStatusHistory.
func (ApplicationStatusHistory) TableName() string {
	return "application_status_history"
}
