package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/service/report"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// MonthlyAttendance implements ReportHandler.
func (h *reportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if month == 0 {
		month = int(now.Month())
	}
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = now.Year()
	}

	workbook, err := h.reportService.MonthlyAttendanceXLSX(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance-%04d-%02d.xlsx", year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
