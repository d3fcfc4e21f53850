package usecase

import (
	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
)

// CanCancel allows admins and the sender of the transaction
func CanCancel(actor models.Principal, t *models.Transaction) bool {
	if actor.IsAdmin() {
		return true
	}
	return t.SenderID != nil && *t.SenderID == actor.ID
}

// CanDeactivate allows admins and the account holder
func CanDeactivate(actor models.Principal, targetID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == targetID
}
