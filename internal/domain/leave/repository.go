package leave

import "context"

type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	GetByID(ctx context.Context, id int64) (*LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)
	Update(ctx context.Context, lr *LeaveRequest) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
	// ListApprovedByUser feeds attendance derivation and salary projection.
	ListApprovedByUser(ctx context.Context, userID int64) ([]LeaveRequest, error)
}
