package postgresql

import (
	"context"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = true`).Scan(&count)
	return count, err
}

func (r *dashboardRepositoryImpl) CountPresentOn(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE date = $1 AND clock_in IS NOT NULL
	`
	var count int64
	err := q.QueryRow(ctx, query, date).Scan(&count)
	return count, err
}
