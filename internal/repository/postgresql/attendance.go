package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, clock_in, clock_out,
	clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng,
	ip_address, status, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.ClockIn,
		&a.ClockOut,
		&a.ClockInLat,
		&a.ClockInLng,
		&a.ClockOutLat,
		&a.ClockOutLng,
		&a.IPAddress,
		&a.Status,
		&a.CreatedAt,
	)
	return a, err
}

// isUniqueViolation detects the (employee_id, date) constraint firing,
// which is how a duplicate clock-in race loses.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance (
			id, employee_id, date, clock_in, clock_out,
			clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng,
			ip_address, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, now()
		)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.ClockIn, att.ClockOut,
		att.ClockInLat, att.ClockInLng, att.ClockOutLat, att.ClockOutLng,
		att.IPAddress, att.Status,
	))
	if isUniqueViolation(err) {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	return created, err
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, date, false)
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, date, true)
}

func (r *attendanceRepositoryImpl) getByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time, lat, lng float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $2, clock_out_lat = $3, clock_out_lng = $4
		WHERE id = $1
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, id, clockOut, lat, lng))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return a, err
}

func (r *attendanceRepositoryImpl) SetStatus(ctx context.Context, id string, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE attendance SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) ApplyCorrection(ctx context.Context, id string, clockIn, clockOut *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_in = $2, clock_out = $3, status = 'PRESENT'
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, clockIn, clockOut)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) History(ctx context.Context, employeeID string, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
			a.clock_in_lat, a.clock_in_lng, a.clock_out_lat, a.clock_out_lng,
			a.ip_address, a.status, a.created_at,
			c.status AS correction_status
		FROM attendance a
		LEFT JOIN attendance_corrections c
			ON c.employee_id = a.employee_id AND c.date = a.date
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut,
			&a.ClockInLat, &a.ClockInLng, &a.ClockOutLat, &a.ClockOutLng,
			&a.IPAddress, &a.Status, &a.CreatedAt,
			&a.CorrectionStatus,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *attendanceRepositoryImpl) CountByStatus(ctx context.Context, employeeID string, start, end time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		GROUP BY status
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *attendanceRepositoryImpl) CountPresentInMonth(ctx context.Context, employeeID string, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
			AND status = 'PRESENT'
	`
	var n int
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&n)
	return n, err
}

func (r *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time, employeeIDs []string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE date = $1 AND employee_id = ANY($2)
		ORDER BY employee_id
	`
	rows, err := q.Query(ctx, query, date, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
