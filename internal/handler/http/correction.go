package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type CorrectionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService correction.CorrectionService
}

func NewCorrectionHandler(correctionService correction.CorrectionService) CorrectionHandler {
	return &correctionHandlerImpl{correctionService: correctionService}
}

// Submit implements CorrectionHandler.
func (h *correctionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req correction.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	corr, err := h.correctionService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Correction submitted", correction.ToResponse(corr))
}

// Review implements CorrectionHandler.
func (h *correctionHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req correction.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CorrectionID = chi.URLParam(r, "id")
	req.ReviewerID = middleware.UserID(r)

	reviewed, err := h.correctionService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, correction.ToResponse(reviewed))
}

// List implements CorrectionHandler.
func (h *correctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	corrections, total, err := h.correctionService.List(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]correction.CorrectionResponse, 0, len(corrections))
	for _, c := range corrections {
		out = append(out, correction.ToResponse(c))
	}
	response.SuccessWithMeta(w, out, response.PageMeta(page, limit, total))
}
