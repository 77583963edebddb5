package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/auth"
	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/middleware"
	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.Service
}

func NewAdvanceHandler(advanceService advance.Service) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create advance request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.advanceService.Create(r.Context(), callerID, middleware.IsManager(r), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance request created", resp)
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	params := advance.ListParams{
		CallerID:  callerID,
		IsManager: middleware.IsManager(r),
	}

	if v := r.URL.Query().Get("user_id"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid user_id filter", nil)
			return
		}
		params.Filter.UserID = &userID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := advance.Status(v)
		params.Filter.Status = &status
	}

	resp, err := h.advanceService.List(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid advance request id", nil)
		return
	}

	resp, err := h.advanceService.GetByID(r.Context(), callerID, middleware.IsManager(r), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid advance request id", nil)
		return
	}

	var req advance.UpdateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update advance request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.advanceService.Update(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request updated", resp)
}

// UpdateStatus implements AdvanceHandler.
func (h *AdvanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid advance request id", nil)
		return
	}

	var req advance.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update advance status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.advanceService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request status updated", resp)
}

// Delete implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid advance request id", nil)
		return
	}

	if err := h.advanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request deleted", nil)
}
