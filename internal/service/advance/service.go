package advance

import (
	"context"
	"time"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
)

type advanceServiceImpl struct {
	advanceRepo advance.Repository
	userRepo    user.Repository
}

func NewAdvanceService(advanceRepo advance.Repository, userRepo user.Repository) advance.Service {
	return &advanceServiceImpl{
		advanceRepo: advanceRepo,
		userRepo:    userRepo,
	}
}

// Create implements advance.Service. Employee submissions start pending;
// a manager filing on an employee's behalf approves immediately.
func (s *advanceServiceImpl) Create(ctx context.Context, callerID int64, isManager bool, req *advance.CreateAdvanceRequest) (*advance.AdvanceRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	targetID := callerID
	if isManager && req.UserID != nil {
		targetID = *req.UserID
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	status := advance.StatusPending
	if isManager {
		status = advance.StatusApproved
	}

	ar := &advance.AdvanceRequest{
		UserID:      target.ID,
		UserName:    target.Name,
		Amount:      req.Amount,
		Reason:      req.Reason,
		Status:      status,
		SubmittedAt: time.Now(),
	}

	if err := s.advanceRepo.Create(ctx, ar); err != nil {
		return nil, err
	}

	resp := advance.ToAdvanceRequestResponse(ar)
	return &resp, nil
}

// List implements advance.Service.
func (s *advanceServiceImpl) List(ctx context.Context, params advance.ListParams) ([]advance.AdvanceRequestResponse, error) {
	filter := params.Filter
	if !params.IsManager {
		filter.UserID = &params.CallerID
	}

	requests, err := s.advanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, advance.ToAdvanceRequestResponse(&requests[i]))
	}

	return responses, nil
}

// GetByID implements advance.Service.
func (s *advanceServiceImpl) GetByID(ctx context.Context, callerID int64, isManager bool, id int64) (*advance.AdvanceRequestResponse, error) {
	ar, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isManager && ar.UserID != callerID {
		return nil, advance.ErrNotRequestOwner
	}

	resp := advance.ToAdvanceRequestResponse(ar)
	return &resp, nil
}

// Update implements advance.Service.
func (s *advanceServiceImpl) Update(ctx context.Context, id int64, req *advance.UpdateAdvanceRequest) (*advance.AdvanceRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ar, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		ar.Amount = *req.Amount
	}
	if req.Reason != nil {
		ar.Reason = *req.Reason
	}

	if err := s.advanceRepo.Update(ctx, ar); err != nil {
		return nil, err
	}

	resp := advance.ToAdvanceRequestResponse(ar)
	return &resp, nil
}

// UpdateStatus implements advance.Service.
func (s *advanceServiceImpl) UpdateStatus(ctx context.Context, id int64, req *advance.UpdateStatusRequest) (*advance.AdvanceRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.advanceRepo.UpdateStatus(ctx, id, advance.Status(req.Status)); err != nil {
		return nil, err
	}

	ar, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := advance.ToAdvanceRequestResponse(ar)
	return &resp, nil
}

// Delete implements advance.Service.
func (s *advanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.advanceRepo.Delete(ctx, id)
}
