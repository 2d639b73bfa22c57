package services

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"webdev-order-api/models"
)

// AuditEntry is the input for recording a non-transition mutation in the
// audit ledger. Status changes are audited by the transition executor
// inside its transaction, not through this path.
type AuditEntry struct {
	Action       string
	UserID       *int
	TargetEntity string
	TargetID     *int
	OldValue     interface{}
	NewValue     interface{}
	Metadata     map[string]interface{}
	Request      RequestMetadata
}

// RecordAudit appends one row to the audit ledger. A failure is logged but
// not returned: auditing a create/delete must not fail the mutation itself.
func RecordAudit(db *gorm.DB, entry AuditEntry) {
	row := models.AuditLog{
		Action:       entry.Action,
		UserID:       entry.UserID,
		TargetEntity: entry.TargetEntity,
		TargetID:     entry.TargetID,
		OldValue:     marshalSnapshot(entry.OldValue),
		NewValue:     marshalSnapshot(entry.NewValue),
		IPAddress:    entry.Request.IPAddress,
		UserAgent:    entry.Request.UserAgent,
		Metadata:     marshalSnapshot(entry.Metadata),
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("Failed to record audit entry %s: %v", entry.Action, err)
	}
}

func marshalSnapshot(v interface{}) *string {
	if v == nil {
		return nil
	}
	if m, ok := v.(map[string]interface{}); ok && len(m) == 0 {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal audit snapshot: %v", err)
		return nil
	}
	s := string(raw)
	return &s
}
