package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// UsernameExists participates in the running transaction when one is
	// carried in ctx, which keeps the unique-username generation loop and
	// the subsequent insert atomic.
	UsernameExists(ctx context.Context, username string) (bool, error)

	UpdatePassword(ctx context.Context, id, hashedPassword string) error
	SetMustResetPassword(ctx context.Context, id string, mustReset bool) error
	SetActive(ctx context.Context, id string, isActive bool) error
}
