package payroll

import "context"

// PayrollService defines payroll generation and payslip access.
type PayrollService interface {
	// Generate runs payroll for the whole month: one record plus one
	// payslip per active employee, skipping those already covered.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)

	ListRecords(ctx context.Context, page, limit int) ([]PayrollRecord, int64, error)
	ListMyPayslips(ctx context.Context, employeeID string, page, limit int) ([]PayslipDetail, int64, error)

	// PayslipPDF renders the payslip as a PDF; only the owning employee
	// or HR/admin may fetch it.
	PayslipPDF(ctx context.Context, payslipID, requesterUserID string) ([]byte, error)
}
