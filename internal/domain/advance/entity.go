package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// AdvanceRequest entity
type AdvanceRequest struct {
	ID       int64
	UserID   int64
	UserName string

	Amount      decimal.Decimal
	Reason      string
	Status      Status
	SubmittedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
