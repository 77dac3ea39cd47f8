package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, employee_code, first_name, last_name, email, phone,
	department, designation, manager_id, monthly_salary, date_of_joining,
	casual_leave_balance, medical_leave_balance, earned_leave_balance, last_leave_accrual,
	is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.Department,
		&e.Designation,
		&e.ManagerID,
		&e.MonthlySalary,
		&e.DateOfJoining,
		&e.CasualLeaveBalance,
		&e.MedicalLeaveBalance,
		&e.EarnedLeaveBalance,
		&e.LastLeaveAccrual,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, user_id, employee_code, first_name, last_name, email, phone,
			department, designation, manager_id, monthly_salary, date_of_joining,
			casual_leave_balance, medical_leave_balance, earned_leave_balance,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15,
			$16, now(), now()
		)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.Department, emp.Designation, emp.ManagerID, emp.MonthlySalary, emp.DateOfJoining,
		emp.CasualLeaveBalance, emp.MedicalLeaveBalance, emp.EarnedLeaveBalance,
		emp.IsActive,
	))
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByIDForUpdate implements the row lock the leave review transaction
// takes on the balance ledger.
func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// DeductLeaveBalance decrements the matching counter server-side. The
// expression form keeps concurrent approvals of two different leaves
// for the same employee correct under the row lock.
func (r *employeeRepositoryImpl) DeductLeaveBalance(ctx context.Context, id, leaveType string, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch leaveType {
	case "CASUAL":
		column = "casual_leave_balance"
	case "MEDICAL":
		column = "medical_leave_balance"
	case "EARNED":
		column = "earned_leave_balance"
	default:
		return fmt.Errorf("leave type %q has no balance counter", leaveType)
	}

	query := fmt.Sprintf(`UPDATE employees SET %s = %s - $2, updated_at = now() WHERE id = $1`, column, column)
	tag, err := q.Exec(ctx, query, id, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CreditMonthlyAccrual(ctx context.Context, id string, firstOfMonth time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET casual_leave_balance = casual_leave_balance + 1,
			medical_leave_balance = medical_leave_balance + 1,
			last_leave_accrual = $2,
			updated_at = now()
		WHERE id = $1
	`
	_, err := q.Exec(ctx, query, id, firstOfMonth)
	return err
}

func (r *employeeRepositoryImpl) List(ctx context.Context, page, limit int, search string) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit
	pattern := "%" + search + "%"

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = '%%' OR first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR employee_code ILIKE $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM employees
		WHERE ($1 = '%%' OR first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR employee_code ILIKE $1)
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE is_active = TRUE ORDER BY first_name, last_name`)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListActiveJoinedBefore(ctx context.Context, cutoff time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE AND date_of_joining <= $1
		ORDER BY employee_code
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListManagers(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.is_active = TRUE
			AND EXISTS (SELECT 1 FROM users u WHERE u.id = e.user_id AND u.role IN ('MANAGER', 'HR', 'SUPER_ADMIN'))
		ORDER BY e.first_name, e.last_name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE manager_id = $1 AND is_active = TRUE ORDER BY first_name`, managerID)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, isActive bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
