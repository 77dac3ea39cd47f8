package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	request, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", leave.ToResponse(request))
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	requests, total, err := h.leaveService.ListMine(r.Context(), middleware.EmployeeID(r), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, toLeaveResponses(requests), response.PageMeta(page, limit, total))
}

// Review implements LeaveHandler.
func (h *leaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req leave.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")
	req.ReviewerID = middleware.UserID(r)

	reviewed, err := h.leaveService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToResponse(reviewed))
}

// ListAll implements LeaveHandler.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := leave.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = leave.StatusPending
	}

	requests, total, err := h.leaveService.ListByStatus(r.Context(), status, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, toLeaveResponses(requests), response.PageMeta(page, limit, total))
}

// ListTeam implements LeaveHandler.
func (h *leaveHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListTeam(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toLeaveResponses(requests))
}

func toLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, leave.ToResponse(lr))
	}
	return out
}
