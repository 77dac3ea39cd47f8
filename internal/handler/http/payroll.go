package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GeneratedBy = middleware.UserID(r)

	result, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

type payrollRecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	WorkingDays   int     `json:"workingDays"`
	DaysPresent   int     `json:"daysPresent"`
	MonthlySalary string  `json:"monthlySalary"`
	PayableAmount string  `json:"payableAmount"`
	EmployeeName  *string `json:"employeeName,omitempty"`
}

// ListRecords implements PayrollHandler.
func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	records, total, err := h.payrollService.ListRecords(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]payrollRecordResponse, 0, len(records))
	for _, rec := range records {
		resp := payrollRecordResponse{
			ID:            rec.ID,
			EmployeeID:    rec.EmployeeID,
			Month:         rec.Month,
			Year:          rec.Year,
			WorkingDays:   rec.WorkingDays,
			DaysPresent:   rec.DaysPresent,
			MonthlySalary: rec.MonthlySalary.StringFixed(2),
			PayableAmount: rec.PayableAmount.StringFixed(2),
		}
		if rec.EmployeeFirstName != nil && rec.EmployeeLastName != nil {
			name := *rec.EmployeeFirstName + " " + *rec.EmployeeLastName
			resp.EmployeeName = &name
		}
		out = append(out, resp)
	}
	response.SuccessWithMeta(w, out, response.PageMeta(page, limit, total))
}

type payslipResponse struct {
	ID            string `json:"id"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	WorkingDays   int    `json:"workingDays"`
	DaysPresent   int    `json:"daysPresent"`
	PayableAmount string `json:"payableAmount"`
}

// ListMyPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	payslips, total, err := h.payrollService.ListMyPayslips(r.Context(), middleware.EmployeeID(r), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]payslipResponse, 0, len(payslips))
	for _, slip := range payslips {
		out = append(out, payslipResponse{
			ID:            slip.ID,
			Month:         slip.Month,
			Year:          slip.Year,
			WorkingDays:   slip.WorkingDays,
			DaysPresent:   slip.DaysPresent,
			PayableAmount: slip.PayableAmount.StringFixed(2),
		})
	}
	response.SuccessWithMeta(w, out, response.PageMeta(page, limit, total))
}

// DownloadPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")

	pdf, err := h.payrollService.PayslipPDF(r.Context(), payslipID, middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", payslipID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
