package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is the access level of an account holder
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleRegular Role = "REGULAR"
)

// Account holds a balance. Balance is never negative and always carries two decimal places.
type Account struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Email     string          `json:"email" db:"email"`
	Role      Role            `json:"role" db:"role"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// AccountView is the public representation of an account
type AccountView struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	Role     Role            `json:"role"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
}

// View returns the public representation, nil for a nil account
func (a *Account) View() *AccountView {
	if a == nil {
		return nil
	}
	return &AccountView{
		ID:       a.ID,
		Email:    a.Email,
		Role:     a.Role,
		Balance:  a.Balance,
		IsActive: a.IsActive,
	}
}

// Principal is the authenticated caller of a ledger operation
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
