package payroll

import "context"

type PayrollRepository interface {
	CreateRecord(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)

	// HasRecord reports whether a record already exists for the
	// employee and month; a generation run skips those.
	HasRecord(ctx context.Context, employeeID string, month, year int) (bool, error)

	CreatePayslip(ctx context.Context, slip Payslip) (Payslip, error)
	ListRecords(ctx context.Context, page, limit int) ([]PayrollRecord, int64, error)
	ListPayslipsByEmployee(ctx context.Context, employeeID string, page, limit int) ([]PayslipDetail, int64, error)
	GetPayslipDetail(ctx context.Context, payslipID string) (PayslipDetail, error)
}
