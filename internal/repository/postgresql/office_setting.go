package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/setting"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type officeSettingRepositoryImpl struct {
	db *database.DB
}

func NewOfficeSettingRepository(db *database.DB) setting.OfficeSettingRepository {
	return &officeSettingRepositoryImpl{db: db}
}

func (r *officeSettingRepositoryImpl) Get(ctx context.Context) (*setting.OfficeSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, office_name, latitude, longitude, allowed_radius_meters, updated_at
		FROM office_settings
		LIMIT 1
	`
	var s setting.OfficeSetting
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.OfficeName, &s.Latitude, &s.Longitude, &s.AllowedRadiusMeters, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *officeSettingRepositoryImpl) Upsert(ctx context.Context, s setting.OfficeSetting) (setting.OfficeSetting, error) {
	q := GetQuerier(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil {
		return setting.OfficeSetting{}, err
	}

	if existing != nil {
		query := `
			UPDATE office_settings
			SET office_name = $2, latitude = $3, longitude = $4, allowed_radius_meters = $5, updated_at = now()
			WHERE id = $1
			RETURNING id, office_name, latitude, longitude, allowed_radius_meters, updated_at
		`
		var out setting.OfficeSetting
		err := q.QueryRow(ctx, query, existing.ID, s.OfficeName, s.Latitude, s.Longitude, s.AllowedRadiusMeters).
			Scan(&out.ID, &out.OfficeName, &out.Latitude, &out.Longitude, &out.AllowedRadiusMeters, &out.UpdatedAt)
		return out, err
	}

	query := `
		INSERT INTO office_settings (id, office_name, latitude, longitude, allowed_radius_meters, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, office_name, latitude, longitude, allowed_radius_meters, updated_at
	`
	var out setting.OfficeSetting
	err = q.QueryRow(ctx, query, uuid.NewString(), s.OfficeName, s.Latitude, s.Longitude, s.AllowedRadiusMeters).
		Scan(&out.ID, &out.OfficeName, &out.Latitude, &out.Longitude, &out.AllowedRadiusMeters, &out.UpdatedAt)
	return out, err
}
