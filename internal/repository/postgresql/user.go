package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, password, role, is_active, must_reset_password, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Role,
		&u.IsActive,
		&u.MustResetPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, username, password, role, is_active, must_reset_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, u.ID, u.Username, u.Password, u.Role, u.IsActive, u.MustResetPassword))
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password = $2, updated_at = now() WHERE id = $1`, id, hashedPassword)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepositoryImpl) SetMustResetPassword(ctx context.Context, id string, mustReset bool) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET must_reset_password = $2, updated_at = now() WHERE id = $1`, id, mustReset)
	return err
}

func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, isActive bool) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, id, isActive)
	return err
}
