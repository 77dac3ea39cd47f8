package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	user.UserRepository
	auditor audit.Recorder
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	auditor audit.Recorder,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		auditor:              auditor,
	}
}

// Generate implements payroll.PayrollService. Employees already
// covered for the month are skipped, so a rerun only fills gaps.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResult{}, err
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	workingDays := attendance.WorkingDaysBetween(monthStart, monthEnd)

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return payroll.GenerateResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := payroll.GenerateResult{Month: req.Month, Year: req.Year}
	for _, emp := range employees {
		exists, err := s.PayrollRepository.HasRecord(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			return result, fmt.Errorf("failed to check payroll record: %w", err)
		}
		if exists {
			result.Skipped++
			continue
		}

		daysPresent, err := s.AttendanceRepository.CountPresentInMonth(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			return result, fmt.Errorf("failed to count present days: %w", err)
		}

		record, err := s.PayrollRepository.CreateRecord(ctx, payroll.PayrollRecord{
			EmployeeID:    emp.ID,
			Month:         req.Month,
			Year:          req.Year,
			WorkingDays:   workingDays,
			DaysPresent:   daysPresent,
			MonthlySalary: emp.MonthlySalary,
			PayableAmount: payroll.Payable(emp.MonthlySalary, workingDays, daysPresent),
			GeneratedBy:   &req.GeneratedBy,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create payroll record: %w", err)
		}

		if _, err := s.PayrollRepository.CreatePayslip(ctx, payroll.Payslip{
			PayrollID:  record.ID,
			EmployeeID: emp.ID,
			Month:      req.Month,
			Year:       req.Year,
		}); err != nil {
			return result, fmt.Errorf("failed to create payslip: %w", err)
		}

		result.Generated++
	}

	slog.Info("Payroll generation completed",
		"month", req.Month,
		"year", req.Year,
		"generated", result.Generated,
		"skipped", result.Skipped,
	)

	details := fmt.Sprintf("Payroll %d/%d: %d generated, %d skipped", req.Month, req.Year, result.Generated, result.Skipped)
	s.auditor.Record(ctx, audit.Entry{
		UserID:  &req.GeneratedBy,
		Action:  audit.ActionGeneratePayroll,
		Entity:  "payroll",
		Details: &details,
	})

	return result, nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, page, limit int) ([]payroll.PayrollRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.PayrollRepository.ListRecords(ctx, page, limit)
}

// ListMyPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListMyPayslips(ctx context.Context, employeeID string, page, limit int) ([]payroll.PayslipDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.PayrollRepository.ListPayslipsByEmployee(ctx, employeeID, page, limit)
}

// PayslipPDF implements payroll.PayrollService. The PDF is rendered on
// demand; nothing is written to disk.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, payslipID, requesterUserID string) ([]byte, error) {
	detail, err := s.PayrollRepository.GetPayslipDetail(ctx, payslipID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizePayslip(ctx, detail, requesterUserID); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (%s)", detail.FirstName, detail.LastName, detail.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s / %s", detail.Department, detail.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(detail.Month), detail.Year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d", detail.WorkingDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days present: %d", detail.DaysPresent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly salary: %s", detail.MonthlySalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payable amount: %s", detail.PayableAmount.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// authorizePayslip allows the owning employee and HR/admin users.
func (s *PayrollServiceImpl) authorizePayslip(ctx context.Context, detail payroll.PayslipDetail, requesterUserID string) error {
	requester, err := s.UserRepository.GetByID(ctx, requesterUserID)
	if err != nil {
		return err
	}
	if requester.Role == user.RoleSuperAdmin || requester.Role == user.RoleHR {
		return nil
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, requesterUserID)
	if err != nil || emp.ID != detail.EmployeeID {
		return payroll.ErrPayslipDenied
	}
	return nil
}
