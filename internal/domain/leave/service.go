package leave

import "context"

// ListParams carries the caller's identity so the service can scope
// results: employees only ever see their own requests.
type ListParams struct {
	CallerID  int64
	IsManager bool
	Filter    Filter
}

type Service interface {
	Create(ctx context.Context, callerID int64, isManager bool, req *CreateLeaveRequest) (*LeaveRequestResponse, error)
	List(ctx context.Context, params ListParams) ([]LeaveRequestResponse, error)
	GetByID(ctx context.Context, callerID int64, isManager bool, id int64) (*LeaveRequestResponse, error)
	Update(ctx context.Context, id int64, req *UpdateLeaveRequest) (*LeaveRequestResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*LeaveRequestResponse, error)
	Delete(ctx context.Context, id int64) error
}
