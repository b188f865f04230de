package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

type Position string

const (
	PositionCashier Position = "cashier"
	PositionManager Position = "manager"
	PositionHelper  Position = "helper"
)

type DutyType string

const (
	DutyTypeDay   DutyType = "Day"
	DutyTypeNight DutyType = "Night"
)

// Worker is any account that can log in: the station admin or a shift worker.
type Worker struct {
	ID           string
	StationID    string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Position     *Position
	DutyType     *DutyType
	BaseSalary   decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (w Worker) IsManager() bool {
	return w.Role == RoleWorker && w.Position != nil && *w.Position == PositionManager
}

// IsManagerClaim reports whether a token's role and position name a manager.
func IsManagerClaim(role string, position *string) bool {
	return role == string(RoleWorker) && position != nil && *position == string(PositionManager)
}

// Helper is a payroll-only staff member without credentials.
type Helper struct {
	ID            string
	StationID     string
	Name          string
	PhoneNumber   string
	MonthlySalary decimal.Decimal
	DutyType      *DutyType
	CreatedAt     time.Time
}
