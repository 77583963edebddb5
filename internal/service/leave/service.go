package leave

import (
	"context"
	"time"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
)

type leaveServiceImpl struct {
	leaveRepo leave.Repository
	userRepo  user.Repository
}

func NewLeaveService(leaveRepo leave.Repository, userRepo user.Repository) leave.Service {
	return &leaveServiceImpl{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
}

// Create implements leave.Service. Requests are approved on creation;
// the manager flips the status afterwards only when contested.
func (s *leaveServiceImpl) Create(ctx context.Context, callerID int64, isManager bool, req *leave.CreateLeaveRequest) (*leave.LeaveRequestResponse, error) {
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

	date, _ := time.Parse("2006-01-02", req.Date)

	lr := &leave.LeaveRequest{
		UserID:           target.ID,
		UserName:         target.Name,
		Date:             &date,
		Shift:            leave.NormalizeShift(req.Shift),
		Reason:           req.Reason,
		Status:           leave.StatusApproved,
		SubmittedAt:      time.Now(),
		CreatedByManager: isManager && targetID != callerID,
	}

	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return nil, err
	}

	resp := leave.ToLeaveRequestResponse(lr)
	return &resp, nil
}

// List implements leave.Service. Employees only see their own requests
// regardless of the filter they send.
func (s *leaveServiceImpl) List(ctx context.Context, params leave.ListParams) ([]leave.LeaveRequestResponse, error) {
	filter := params.Filter
	if !params.IsManager {
		filter.UserID = &params.CallerID
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, leave.ToLeaveRequestResponse(&requests[i]))
	}

	return responses, nil
}

// GetByID implements leave.Service.
func (s *leaveServiceImpl) GetByID(ctx context.Context, callerID int64, isManager bool, id int64) (*leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isManager && lr.UserID != callerID {
		return nil, leave.ErrNotRequestOwner
	}

	resp := leave.ToLeaveRequestResponse(lr)
	return &resp, nil
}

// Update implements leave.Service.
func (s *leaveServiceImpl) Update(ctx context.Context, id int64, req *leave.UpdateLeaveRequest) (*leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		lr.Date = &date
	}
	if req.Shift != nil {
		lr.Shift = leave.NormalizeShift(*req.Shift)
	}
	if req.Reason != nil {
		lr.Reason = *req.Reason
	}

	if err := s.leaveRepo.Update(ctx, lr); err != nil {
		return nil, err
	}

	resp := leave.ToLeaveRequestResponse(lr)
	return &resp, nil
}

// UpdateStatus implements leave.Service.
func (s *leaveServiceImpl) UpdateStatus(ctx context.Context, id int64, req *leave.UpdateStatusRequest) (*leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, leave.Status(req.Status)); err != nil {
		return nil, err
	}

	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := leave.ToLeaveRequestResponse(lr)
	return &resp, nil
}

// Delete implements leave.Service.
func (s *leaveServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.leaveRepo.Delete(ctx, id)
}
