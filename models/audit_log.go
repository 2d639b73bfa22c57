package models

import "time"

// Audit actions recorded system-wide.
const (
	AuditApplicationCreate       = "application_create"
	AuditApplicationUpdate       = "application_update"
	AuditApplicationDelete       = "application_delete"
	AuditApplicationStatusChange = "application_status_change"
	AuditApplicationStatusReset  = "application_status_reset"
	AuditUserLogin               = "user_login"
	AuditPasswordChange          = "password_change"
)

// AuditLog is the system-wide append-only ledger of sensitive mutations.
// Rows are never updated or deleted.
type AuditLog struct {
	AuditID      int       `gorm:"primaryKey;column:audit_id" json:"audit_id"`
	Action       string    `gorm:"column:action" json:"action"`
	UserID       *int      `gorm:"column:user_id" json:"user_id,omitempty"`
	TargetEntity string    `gorm:"column:target_entity" json:"target_entity"`
	TargetID     *int      `gorm:"column:target_id" json:"target_id,omitempty"`
	OldValue     *string   `gorm:"column:old_value;type:json" json:"old_value,omitempty"`
	NewValue     *string   `gorm:"column:new_value;type:json" json:"new_value,omitempty"`
	IPAddress    *string   `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent    *string   `gorm:"column:user_agent" json:"user_agent,omitempty"`
	Metadata     *string   `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
