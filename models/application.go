package models

import "time"

// Application statuses. The set is closed: status columns must always hold
// one of these nine values.
const (
	StatusDraft      = "draft"
	StatusSubmitted  = "submitted"
	StatusInReview   = "in_review"
	StatusNeedsInfo  = "needs_info"
	StatusEstimated  = "estimated"
	StatusApproved   = "approved"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Service types offered to clients.
const (
	ServiceWebsite     = "website"
	ServiceWebApp      = "webapp"
	ServiceEcommerce   = "ecommerce"
	ServiceMaintenance = "maintenance"
	ServiceOther       = "other"
)

// Priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Application struct {
	ApplicationID int        `gorm:"primaryKey;column:application_id" json:"application_id"`
	UserID        int        `gorm:"column:user_id" json:"user_id"`
	AssignedTo    *int       `gorm:"column:assigned_to" json:"assigned_to,omitempty"`
	Title         string     `gorm:"column:title" json:"title"`
	Description   string     `gorm:"column:description" json:"description"`
	ServiceType   string     `gorm:"column:service_type" json:"service_type"`
	Status        string     `gorm:"column:status" json:"status"`
	Priority      string     `gorm:"column:priority" json:"priority"`
	SubmittedAt   *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	User     User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

// TableName overrides
func (Application) TableName() string {
	return "applications"
}
