package admin

import "context"

type AdminRepository interface {
	GetAll(ctx context.Context) ([]Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	Create(ctx context.Context, newAdmin Admin) (Admin, error)
	Delete(ctx context.Context, id string) error
}
