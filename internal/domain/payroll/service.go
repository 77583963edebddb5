package payroll

import "context"

type Service interface {
	// MyProjection computes the signed current-month view for the caller.
	MyProjection(ctx context.Context, userID int64) (*ProjectionResponse, error)
	// MonthlySummary builds the manager table for every employee account.
	MonthlySummary(ctx context.Context, month string) (*SummaryResponse, error)
	// PreviewRemaining recomputes with form-entered values, no writes.
	PreviewRemaining(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error)
	// SetSalary persists the salary and reconciles approved advances.
	SetSalary(ctx context.Context, req *SetSalaryRequest) (*SetSalaryResponse, error)
}
