package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, ar *AdvanceRequest) error
	GetByID(ctx context.Context, id int64) (*AdvanceRequest, error)
	List(ctx context.Context, filter Filter) ([]AdvanceRequest, error)
	Update(ctx context.Context, ar *AdvanceRequest) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error

	// SumApprovedInMonth totals approved amounts whose SubmittedAt date
	// (date part only) falls inside the month, both boundaries inclusive.
	SumApprovedInMonth(ctx context.Context, userID int64, month string) (decimal.Decimal, error)
	ListApprovedInMonth(ctx context.Context, userID int64, month string) ([]AdvanceRequest, error)
}
