package services

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"webdev-order-api/models"
)

// RequestMetadata carries the request origin recorded with every transition.
// It is a plain value so the executor never touches an HTTP request handle.
type RequestMetadata struct {
	IPAddress *string
	UserAgent *string
}

// NewRequestMetadata builds sanitized request metadata. An address that is
// not a valid IPv4/IPv6 literal is stored as null rather than rejected.
func NewRequestMetadata(ip, userAgent string) RequestMetadata {
	var meta RequestMetadata
	if trimmed := strings.TrimSpace(ip); net.ParseIP(trimmed) != nil {
		meta.IPAddress = &trimmed
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		meta.UserAgent = &ua
	}
	return meta
}

// TransitionSummary describes one committed transition for the caller.
type TransitionSummary struct {
	OldStatus      string    `json:"old_status"`
	OldStatusLabel string    `json:"old_status_label"`
	NewStatus      string    `json:"new_status"`
	NewStatusLabel string    `json:"new_status_label"`
	ChangedBy      int       `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

// TransitionResult is the success outcome of a transition request. Changed
// is false for the idempotent no-op case, in which Summary is nil and no
// history or audit row was written.
type TransitionResult struct {
	Application *models.Application
	Changed     bool
	Summary     *TransitionSummary
}

// Notifier receives the owner-facing side effect of a committed transition.
// Dispatch happens after commit; a notifier failure never rolls back the
// status change.
type Notifier interface {
	NotifyStatusChange(app *models.Application, oldStatus, newStatus string, actor models.User)
}

// TransitionService is the sole entry point allowed to change an
// application's status. Every mutation commits the application row, the
// status-history row and the audit row as one atomic unit.
type TransitionService struct {
	store    ApplicationStore
	notifier Notifier
}

func NewTransitionService(store ApplicationStore, notifier Notifier) *TransitionService {
	return &TransitionService{store: store, notifier: notifier}
}

// ExecuteTransition validates and applies a forward status transition.
func (s *TransitionService) ExecuteTransition(applicationID int, requestedStatus string, actor models.User, comment *string, meta RequestMetadata) (*TransitionResult, error) {
	var result *TransitionResult

	err := s.store.InTransaction(func(tx ApplicationTx) error {
		app, err := tx.GetApplicationForUpdate(applicationID)
		if err != nil {
			return err
		}

		if !IsValidStatus(requestedStatus) {
			return ErrInvalidStatus
		}
		if !IsValidStatus(app.Status) {
			log.Printf("integrity violation: application %d holds status '%s'", app.ApplicationID, app.Status)
			return ErrIntegrityViolation
		}

		// Idempotent no-op: repeated identical requests succeed without
		// writing history or audit rows.
		if app.Status == requestedStatus {
			result = &TransitionResult{Application: app, Changed: false}
			return nil
		}

		if !IsValidTransition(app.Status, requestedStatus) {
			return &IllegalTransitionError{
				From:    app.Status,
				To:      requestedStatus,
				Allowed: AvailableTransitions(app.Status),
			}
		}
		if !CanActorTransition(actor, app, app.Status, requestedStatus) {
			return ErrPermissionDenied
		}

		return s.apply(tx, app, requestedStatus, actor, comment, meta, models.AuditApplicationStatusChange, &result)
	})
	if err != nil {
		return nil, translateTransitionError(err)
	}

	s.dispatchNotification(result, actor)
	return result, nil
}

// ResetToDraft is the admin-only path returning an application to draft.
// It is distinct from the forward graph and allowed only from submitted,
// in_review and approved.
func (s *TransitionService) ResetToDraft(applicationID int, actingAdmin models.User, reason *string, meta RequestMetadata) (*TransitionResult, error) {
	if actingAdmin.RoleID != models.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	var result *TransitionResult

	err := s.store.InTransaction(func(tx ApplicationTx) error {
		app, err := tx.GetApplicationForUpdate(applicationID)
		if err != nil {
			return err
		}
		if !IsValidStatus(app.Status) {
			log.Printf("integrity violation: application %d holds status '%s'", app.ApplicationID, app.Status)
			return ErrIntegrityViolation
		}
		if !IsResettable(app.Status) {
			return &IllegalTransitionError{
				From:    app.Status,
				To:      models.StatusDraft,
				Allowed: AvailableTransitions(app.Status),
			}
		}

		return s.apply(tx, app, models.StatusDraft, actingAdmin, reason, meta, models.AuditApplicationStatusReset, &result)
	})
	if err != nil {
		return nil, translateTransitionError(err)
	}

	s.dispatchNotification(result, actingAdmin)
	return result, nil
}

// apply performs the mutation plus its ledger side effects inside tx.
func (s *TransitionService) apply(tx ApplicationTx, app *models.Application, newStatus string, actor models.User, comment *string, meta RequestMetadata, auditAction string, result **TransitionResult) error {
	oldStatus := app.Status
	now := time.Now()

	app.Status = newStatus
	if newStatus == models.StatusSubmitted && app.SubmittedAt == nil {
		app.SubmittedAt = &now
	}
	app.UpdateAt = &now

	if err := tx.UpdateApplicationStatus(app, oldStatus); err != nil {
		return err
	}

	history := models.ApplicationStatusHistory{
		ApplicationID: app.ApplicationID,
		OldStatus:     &oldStatus,
		NewStatus:     newStatus,
		ChangedBy:     actor.UserID,
		Comment:       comment,
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
		CreatedAt:     now,
	}
	if err := tx.CreateStatusHistory(&history); err != nil {
		return err
	}

	audit := models.AuditLog{
		Action:       auditAction,
		UserID:       &actor.UserID,
		TargetEntity: "application",
		TargetID:     &app.ApplicationID,
		OldValue:     statusSnapshot(oldStatus),
		NewValue:     statusSnapshot(newStatus),
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		CreatedAt:    now,
	}
	if err := tx.CreateAuditLog(&audit); err != nil {
		return err
	}

	*result = &TransitionResult{
		Application: app,
		Changed:     true,
		Summary: &TransitionSummary{
			OldStatus:      oldStatus,
			OldStatusLabel: models.StatusLabel(oldStatus),
			NewStatus:      newStatus,
			NewStatusLabel: models.StatusLabel(newStatus),
			ChangedBy:      actor.UserID,
			ChangedAt:      now,
		},
	}
	return nil
}

func (s *TransitionService) dispatchNotification(result *TransitionResult, actor models.User) {
	if s.notifier == nil || result == nil || !result.Changed {
		return
	}
	if actor.UserID == result.Application.UserID {
		return
	}
	s.notifier.NotifyStatusChange(result.Application, result.Summary.OldStatus, result.Summary.NewStatus, actor)
}

// translateTransitionError keeps typed outcomes as-is and folds anything
// else from the store into ErrPersistence.
func translateTransitionError(err error) error {
	switch {
	case errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrConcurrentModification),
		errors.Is(err, ErrIntegrityViolation):
		return err
	}
	if _, ok := AsIllegalTransition(err); ok {
		return err
	}
	log.Printf("status transition persistence failure: %v", err)
	return ErrPersistence
}

func statusSnapshot(status string) *string {
	raw, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil
	}
	s := string(raw)
	return &s
}
