package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, days,
	reason, status, reviewed_by, reviewed_at, created_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Days,
		&lr.Reason,
		&lr.Status,
		&lr.ReviewedBy,
		&lr.ReviewedAt,
		&lr.CreatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, days,
			reason, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, now()
		)
		RETURNING ` + leaveColumns

	return scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.Days,
		request.Reason, request.Status,
	))
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrRequestNotFound
	}
	return lr, err
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewedBy string, reviewedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
				AND status IN ('PENDING', 'APPROVED')
				AND start_date <= $3
				AND end_date >= $2
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists)
	return exists, err
}

func (r *leaveRequestRepositoryImpl) HasApprovedOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
				AND status = 'APPROVED'
				AND start_date <= $2
				AND end_date >= $2
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists)
	return exists, err
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	requests, err := collectLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status, page, limit int) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.days,
			lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at, lr.created_at,
			e.first_name, e.last_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = $1
		ORDER BY lr.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Days,
			&lr.Reason, &lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.CreatedAt,
			&lr.EmployeeFirstName, &lr.EmployeeLastName,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.days,
			lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at, lr.created_at,
			e.first_name, e.last_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE e.manager_id = $1
		ORDER BY lr.created_at DESC
	`
	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Days,
			&lr.Reason, &lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.CreatedAt,
			&lr.EmployeeFirstName, &lr.EmployeeLastName,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`).Scan(&total)
	return total, err
}

func (r *leaveRequestRepositoryImpl) CountApprovedOn(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM leave_requests
		WHERE status = 'APPROVED' AND start_date <= $1 AND end_date >= $1
	`
	var total int64
	err := q.QueryRow(ctx, query, date).Scan(&total)
	return total, err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
