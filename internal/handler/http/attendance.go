package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	TeamToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid location data", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)
	ip := clientIP(r)
	req.IPAddress = &ip

	record, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.ToResponse(record))
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid location data", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	record, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.ToResponse(record))
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Today(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if record == nil {
		response.Success(w, nil)
		return
	}
	response.Success(w, attendance.ToResponse(*record))
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	records, total, err := h.attendanceService.History(r.Context(), middleware.EmployeeID(r), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToResponse(rec))
	}
	response.SuccessWithMeta(w, out, response.PageMeta(page, limit, total))
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if month == 0 {
		month = int(now.Month())
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = now.Year()
	}

	summary, err := h.attendanceService.MonthlySummary(r.Context(), middleware.EmployeeID(r), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// TeamToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeamToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.TeamToday(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.ToResponse(rec))
	}
	response.Success(w, out)
}
