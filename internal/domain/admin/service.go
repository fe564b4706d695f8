package admin

import "context"

type AdminService interface {
	ListAdmins(ctx context.Context) ([]AdminResponse, error)
	// CreateAdmin writes the identity-layer user first, then the admin
	// record. The two writes are not transactional; see the admin
	// entity doc for the known divergence gap.
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (AdminResponse, error)
	DeleteAdmin(ctx context.Context, id string) error
}
