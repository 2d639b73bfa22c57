package services

import (
	"fmt"
	"html/template"
	"log"
	"time"

	"gorm.io/gorm"

	"webdev-order-api/config"
	"webdev-order-api/models"
)

// StatusChangeNotifier informs application owners about status changes made
// by someone else: an in-app notification row plus a best-effort email.
type StatusChangeNotifier struct {
	db *gorm.DB
}

func NewStatusChangeNotifier(db *gorm.DB) *StatusChangeNotifier {
	return &StatusChangeNotifier{db: db}
}

// NotifyStatusChange runs after the transition committed. Failures are
// logged and swallowed; they must never undo the status change.
func (n *StatusChangeNotifier) NotifyStatusChange(app *models.Application, oldStatus, newStatus string, actor models.User) {
	var owner models.User
	if err := n.db.Where("user_id = ? AND delete_at IS NULL", app.UserID).First(&owner).Error; err != nil {
		log.Printf("status notification skipped: owner %d not found: %v", app.UserID, err)
		return
	}

	title := fmt.Sprintf("Application #%d: %s", app.ApplicationID, models.StatusLabel(newStatus))
	message := fmt.Sprintf("The status of \"%s\" changed from %s to %s.",
		app.Title, models.StatusLabel(oldStatus), models.StatusLabel(newStatus))

	relatedID := uint(app.ApplicationID)
	notification := models.Notification{
		UserID:               uint(owner.UserID),
		Title:                title,
		Message:              message,
		Type:                 notificationType(newStatus),
		RelatedApplicationID: &relatedID,
		IsRead:               false,
		CreateAt:             time.Now(),
	}
	if err := n.db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create status notification for user %d: %v", owner.UserID, err)
	}

	if owner.Email != "" {
		html := buildStatusEmailHTML(owner.FirstName, app.Title, oldStatus, newStatus)
		sendMailSafe([]string{owner.Email}, title, html)
	}
}

func notificationType(status string) string {
	switch status {
	case models.StatusApproved, models.StatusCompleted:
		return "success"
	case models.StatusNeedsInfo:
		return "warning"
	case models.StatusCancelled:
		return "error"
	default:
		return "info"
	}
}

func buildStatusEmailHTML(recipientName, appTitle, oldStatus, newStatus string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px;">
			<p>Dear %s,</p>
			<p>Your application <strong>%s</strong> has moved from
			<strong>%s</strong> to <strong>%s</strong>.</p>
			<p>Log in to your account to see the details.</p>
			<p>Best regards,<br>The Web Development Team</p>
		</div>`,
		template.HTMLEscapeString(recipientName),
		template.HTMLEscapeString(appTitle),
		template.HTMLEscapeString(models.StatusLabel(oldStatus)),
		template.HTMLEscapeString(models.StatusLabel(newStatus)),
	)
}

// sendMailSafe sends in the background so a slow SMTP server never blocks a
// request or holds a row lock.
func sendMailSafe(to []string, subject, html string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("sendMail panic: %v", r)
			}
		}()
		if err := config.SendMail(to, subject, html); err != nil {
			log.Printf("Failed to send mail to %v: %v", to, err)
		}
	}()
}
