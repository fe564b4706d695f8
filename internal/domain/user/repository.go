package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Delete(ctx context.Context, id string) error
}
