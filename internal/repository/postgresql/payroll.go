package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, year, working_days, days_present,
			monthly_salary, payable_amount, generated_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id, employee_id, month, year, working_days, days_present,
			monthly_salary, payable_amount, generated_by, created_at
	`
	var out payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Month, rec.Year, rec.WorkingDays, rec.DaysPresent,
		rec.MonthlySalary, rec.PayableAmount, rec.GeneratedBy,
	).Scan(
		&out.ID, &out.EmployeeID, &out.Month, &out.Year, &out.WorkingDays, &out.DaysPresent,
		&out.MonthlySalary, &out.PayableAmount, &out.GeneratedBy, &out.CreatedAt,
	)
	return out, err
}

func (r *payrollRepositoryImpl) HasRecord(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND month = $2 AND year = $3
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists)
	return exists, err
}

func (r *payrollRepositoryImpl) CreatePayslip(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if slip.ID == "" {
		slip.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payslips (id, payroll_id, employee_id, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, payroll_id, employee_id, month, year, created_at
	`
	var out payroll.Payslip
	err := q.QueryRow(ctx, query, slip.ID, slip.PayrollID, slip.EmployeeID, slip.Month, slip.Year).
		Scan(&out.ID, &out.PayrollID, &out.EmployeeID, &out.Month, &out.Year, &out.CreatedAt)
	return out, err
}

func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, page, limit int) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.working_days, p.days_present,
			p.monthly_salary, p.payable_amount, p.generated_by, p.created_at,
			e.first_name, e.last_name
		FROM payroll_records p
		INNER JOIN employees e ON p.employee_id = e.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.WorkingDays, &rec.DaysPresent,
			&rec.MonthlySalary, &rec.PayableAmount, &rec.GeneratedBy, &rec.CreatedAt,
			&rec.EmployeeFirstName, &rec.EmployeeLastName,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_records`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *payrollRepositoryImpl) ListPayslipsByEmployee(ctx context.Context, employeeID string, page, limit int) ([]payroll.PayslipDetail, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT s.id, s.payroll_id, s.employee_id, s.month, s.year, s.created_at,
			p.working_days, p.days_present, p.monthly_salary, p.payable_amount
		FROM payslips s
		INNER JOIN payroll_records p ON s.payroll_id = p.id
		WHERE s.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	slips := make([]payroll.PayslipDetail, 0)
	for rows.Next() {
		var s payroll.PayslipDetail
		if err := rows.Scan(
			&s.ID, &s.PayrollID, &s.EmployeeID, &s.Month, &s.Year, &s.CreatedAt,
			&s.WorkingDays, &s.DaysPresent, &s.MonthlySalary, &s.PayableAmount,
		); err != nil {
			return nil, 0, err
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payslips WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return slips, total, nil
}

func (r *payrollRepositoryImpl) GetPayslipDetail(ctx context.Context, payslipID string) (payroll.PayslipDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.payroll_id, s.employee_id, s.month, s.year, s.created_at,
			p.working_days, p.days_present, p.monthly_salary, p.payable_amount,
			e.first_name, e.last_name, e.employee_code, e.department, e.designation
		FROM payslips s
		INNER JOIN payroll_records p ON s.payroll_id = p.id
		INNER JOIN employees e ON s.employee_id = e.id
		WHERE s.id = $1
	`
	var s payroll.PayslipDetail
	err := q.QueryRow(ctx, query, payslipID).Scan(
		&s.ID, &s.PayrollID, &s.EmployeeID, &s.Month, &s.Year, &s.CreatedAt,
		&s.WorkingDays, &s.DaysPresent, &s.MonthlySalary, &s.PayableAmount,
		&s.FirstName, &s.LastName, &s.EmployeeCode, &s.Department, &s.Designation,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayslipDetail{}, payroll.ErrPayslipNotFound
	}
	return s, err
}
