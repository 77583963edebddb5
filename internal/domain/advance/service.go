package advance

import "context"

type ListParams struct {
	CallerID  int64
	IsManager bool
	Filter    Filter
}

type Service interface {
	Create(ctx context.Context, callerID int64, isManager bool, req *CreateAdvanceRequest) (*AdvanceRequestResponse, error)
	List(ctx context.Context, params ListParams) ([]AdvanceRequestResponse, error)
	GetByID(ctx context.Context, callerID int64, isManager bool, id int64) (*AdvanceRequestResponse, error)
	Update(ctx context.Context, id int64, req *UpdateAdvanceRequest) (*AdvanceRequestResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*AdvanceRequestResponse, error)
	Delete(ctx context.Context, id int64) error
}
