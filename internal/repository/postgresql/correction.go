package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type correctionRepositoryImpl struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.CorrectionRepository {
	return &correctionRepositoryImpl{db: db}
}

const correctionColumns = `id, employee_id, date, requested_clock_in, requested_clock_out,
	reason, status, reviewed_by, reviewed_at, created_at`

func scanCorrection(row pgx.Row) (correction.Correction, error) {
	var c correction.Correction
	err := row.Scan(
		&c.ID,
		&c.EmployeeID,
		&c.Date,
		&c.RequestedClockIn,
		&c.RequestedClockOut,
		&c.Reason,
		&c.Status,
		&c.ReviewedBy,
		&c.ReviewedAt,
		&c.CreatedAt,
	)
	return c, err
}

func (r *correctionRepositoryImpl) Create(ctx context.Context, c correction.Correction) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_corrections (
			id, employee_id, date, requested_clock_in, requested_clock_out,
			reason, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, now()
		)
		RETURNING ` + correctionColumns

	created, err := scanCorrection(q.QueryRow(ctx, query,
		c.ID, c.EmployeeID, c.Date, c.RequestedClockIn, c.RequestedClockOut,
		c.Reason, c.Status,
	))
	if isUniqueViolation(err) {
		return correction.Correction{}, correction.ErrDuplicateDate
	}
	return created, err
}

func (r *correctionRepositoryImpl) GetByID(ctx context.Context, id string) (correction.Correction, error) {
	return r.getByID(ctx, id, false)
}

func (r *correctionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (correction.Correction, error) {
	return r.getByID(ctx, id, true)
}

func (r *correctionRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (correction.Correction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM attendance_corrections WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	c, err := scanCorrection(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return correction.Correction{}, correction.ErrNotFound
	}
	return c, err
}

func (r *correctionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status correction.Status, reviewedBy string, reviewedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_corrections
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return correction.ErrNotFound
	}
	return nil
}

func (r *correctionRepositoryImpl) List(ctx context.Context, page, limit int) ([]correction.Correction, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT c.id, c.employee_id, c.date, c.requested_clock_in, c.requested_clock_out,
			c.reason, c.status, c.reviewed_by, c.reviewed_at, c.created_at,
			e.first_name, e.last_name
		FROM attendance_corrections c
		INNER JOIN employees e ON c.employee_id = e.id
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	corrections := make([]correction.Correction, 0)
	for rows.Next() {
		var c correction.Correction
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Date, &c.RequestedClockIn, &c.RequestedClockOut,
			&c.Reason, &c.Status, &c.ReviewedBy, &c.ReviewedAt, &c.CreatedAt,
			&c.EmployeeFirstName, &c.EmployeeLastName,
		); err != nil {
			return nil, 0, err
		}
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_corrections`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return corrections, total, nil
}

func (r *correctionRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_corrections WHERE status = 'PENDING'`).Scan(&total)
	return total, err
}
