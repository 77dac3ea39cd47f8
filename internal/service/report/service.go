package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
)

// ReportService exports HR reports.
type ReportService interface {
	// MonthlyAttendanceXLSX renders one row per employee with their
	// per-status day counts for the month.
	MonthlyAttendanceXLSX(ctx context.Context, month, year int) ([]byte, error)
}

type ReportServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
	}
}

// MonthlyAttendanceXLSX implements ReportService.
func (s *ReportServiceImpl) MonthlyAttendanceXLSX(ctx context.Context, month, year int) ([]byte, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Employee Code", "Name", "Department", "Working Days", "Present", "Unpaid", "On Leave"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	workingDays := attendance.WorkingDaysBetween(start, end)
	for rowIdx, emp := range employees {
		counts, err := s.AttendanceRepository.CountByStatus(ctx, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendance for %s: %w", emp.ID, err)
		}

		values := []interface{}{
			emp.EmployeeCode,
			emp.FullName(),
			emp.Department,
			workingDays,
			counts[attendance.StatusPresent],
			counts[attendance.StatusUnpaid],
			counts[attendance.StatusOnLeave],
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
