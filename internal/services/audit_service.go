package services

import (
	"github.com/taniteam/catatan/internal/logger"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/store"
	"github.com/taniteam/catatan/internal/uuid"
)

// systemActor is recorded when a mutation happens without an
// authenticated staff member.
var systemActor = models.Staff{ID: "sys", Name: "System"}

// auditService records immutable audit entries, newest first.
type auditService struct {
	store *store.Store
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(st *store.Store) AuditServicer {
	return &auditService{store: st}
}

// Record prepends one entry to the audit collection and persists it.
// Errors are logged but never propagate to avoid disrupting the main
// operation.
func (s *auditService) Record(actor *models.Staff, action models.AuditAction, details, targetID string) {
	who := systemActor
	if actor != nil {
		who = *actor
	}

	entry := models.AuditEntry{
		ID:        uuid.New(),
		Timestamp: models.Now(),
		UserID:    who.ID,
		UserName:  who.Name,
		Action:    action,
		Details:   details,
		TargetID:  targetID,
	}

	entries := append([]models.AuditEntry{entry}, s.store.AuditLog()...)
	if err := s.store.ReplaceAuditLog(entries); err != nil {
		logger.Get().Errorw("failed to persist audit entry",
			"error", err,
			"action", action,
			"user_id", who.ID,
			"target_id", targetID,
		)
	}
}

// List returns the audit collection in storage order (newest first).
func (s *auditService) List() []models.AuditEntry {
	return s.store.AuditLog()
}
