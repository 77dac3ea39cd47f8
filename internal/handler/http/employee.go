package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListManagers(w http.ResponseWriter, r *http.Request)
	ListTeam(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ActorUserID = middleware.UserID(r)

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", map[string]interface{}{
		"employee":     employee.ToResponse(result.Employee),
		"username":     result.Username,
		"tempPassword": result.TempPassword,
	})
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponse(emp))
}

// Me implements EmployeeHandler.
func (h *employeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetByUserID(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponse(emp))
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	search := r.URL.Query().Get("search")

	employees, total, err := h.employeeService.List(r.Context(), page, limit, search)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, toEmployeeResponses(employees), response.PageMeta(page, limit, total))
}

// ListManagers implements EmployeeHandler.
func (h *employeeHandlerImpl) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.employeeService.ListManagers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toEmployeeResponses(managers))
}

// ListTeam implements EmployeeHandler.
func (h *employeeHandlerImpl) ListTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.employeeService.ListTeam(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toEmployeeResponses(team))
}

// SetActive implements EmployeeHandler.
func (h *employeeHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	err := h.employeeService.SetActive(r.Context(), chi.URLParam(r, "id"), body.IsActive, middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", nil)
}

func toEmployeeResponses(employees []employee.Employee) []employee.EmployeeResponse {
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.ToResponse(e))
	}
	return out
}
