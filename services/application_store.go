package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"webdev-order-api/models"
)

// ApplicationTx is the transaction-scoped slice of the store the transition
// executor mutates through. All writes made through one ApplicationTx commit
// or roll back as a single unit.
type ApplicationTx interface {
	// GetApplicationForUpdate loads a live application by id and holds a row
	// lock on it until the transaction ends. Returns ErrApplicationNotFound
	// for missing or soft-deleted rows.
	GetApplicationForUpdate(id int) (*models.Application, error)

	// UpdateApplicationStatus writes the application's status fields, guarded
	// by the status the transition was validated against. Returns
	// ErrConcurrentModification if the row no longer holds fromStatus.
	UpdateApplicationStatus(app *models.Application, fromStatus string) error

	CreateStatusHistory(h *models.ApplicationStatusHistory) error
	CreateAuditLog(entry *models.AuditLog) error
}

// ApplicationStore persists applications and their side-effect ledgers.
type ApplicationStore interface {
	// InTransaction runs fn inside one transaction: rollback on any returned
	// error, commit only on clean return.
	InTransaction(fn func(tx ApplicationTx) error) error

	// CreateNotification inserts a notification row outside any transition
	// transaction; a failure here never rolls back a committed transition.
	CreateNotification(n *models.Notification) error
}

// GormApplicationStore is the production ApplicationStore backed by GORM.
type GormApplicationStore struct {
	db *gorm.DB
}

func NewGormApplicationStore(db *gorm.DB) *GormApplicationStore {
	return &GormApplicationStore{db: db}
}

func (s *GormApplicationStore) InTransaction(fn func(tx ApplicationTx) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormApplicationTx{db: tx})
	})
}

func (s *GormApplicationStore) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

type gormApplicationTx struct {
	db *gorm.DB
}

func (t *gormApplicationTx) GetApplicationForUpdate(id int) (*models.Application, error) {
	var app models.Application
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ? AND delete_at IS NULL", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (t *gormApplicationTx) UpdateApplicationStatus(app *models.Application, fromStatus string) error {
	result := t.db.Model(&models.Application{}).
		Where("application_id = ? AND status = ?", app.ApplicationID, fromStatus).
		Updates(map[string]interface{}{
			"status":       app.Status,
			"submitted_at": app.SubmittedAt,
			"update_at":    app.UpdateAt,
		})
	if result.Error != nil {
		return result.Error
	}
	// The locking read should make a stale guard impossible, but stores
	// without row locks surface lost races here.
	if result.RowsAffected == 0 {
		return ErrConcurrentModification
	}
	return nil
}

func (t *gormApplicationTx) CreateStatusHistory(h *models.ApplicationStatusHistory) error {
	return t.db.Create(h).Error
}

func (t *gormApplicationTx) CreateAuditLog(entry *models.AuditLog) error {
	return t.db.Create(entry).Error
}
