package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitepulse/erp-backend-go/internal/domain/admin"
	"github.com/sitepulse/erp-backend-go/internal/domain/user"
)

type adminService struct {
	adminRepo admin.AdminRepository
	userRepo  user.UserRepository
}

func NewAdminService(adminRepo admin.AdminRepository, userRepo user.UserRepository) admin.AdminService {
	return &adminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

func (s *adminService) ListAdmins(ctx context.Context) ([]admin.AdminResponse, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]admin.AdminResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, toAdminResponse(a))
	}

	return responses, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req admin.CreateAdminRequest) (admin.AdminResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	id, err := uuid.NewV7()
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to generate admin id: %w", err)
	}

	// The user row lands first, then the admin record. A failure between
	// the two leaves a user without an admin record rather than the
	// reverse, so authorization never outruns authentication.
	if _, err := s.userRepo.Create(ctx, user.User{
		ID:           id.String(),
		Email:        req.Email,
		PasswordHash: &hashStr,
		IsAdmin:      true,
	}); err != nil {
		return admin.AdminResponse{}, err
	}

	a, err := s.adminRepo.Create(ctx, admin.Admin{
		ID:    id.String(),
		Email: req.Email,
	})
	if err != nil {
		return admin.AdminResponse{}, err
	}

	return toAdminResponse(a), nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Mirror the removal in the identity layer. Same loose coupling as
	// creation: a failure here leaves a non-admin user row behind.
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

func toAdminResponse(a admin.Admin) admin.AdminResponse {
	return admin.AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
