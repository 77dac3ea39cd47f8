package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.AuditLogRepository {
	return &auditLogRepositoryImpl{db: db}
}

// Append inserts one audit row. The table is append-only: no update or
// delete statement exists anywhere in this repository.
func (r *auditLogRepositoryImpl) Append(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO audit_logs (id, user_id, action, entity, entity_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`
	_, err := q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Action, entry.Entity, entry.EntityID, entry.Details, entry.IPAddress,
	)
	return err
}

func (r *auditLogRepositoryImpl) List(ctx context.Context, page, limit int) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	offset := (page - 1) * limit

	query := `
		SELECT a.id, a.user_id, a.action, a.entity, a.entity_id, a.details, a.ip_address, a.created_at,
			u.username
		FROM audit_logs a
		LEFT JOIN users u ON a.user_id = u.id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.Entity, &e.EntityID, &e.Details, &e.IPAddress, &e.CreatedAt,
			&e.Username,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
