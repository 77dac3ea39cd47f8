package payroll

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrPayslipDenied   = errors.New("not allowed to access this payslip")
)
