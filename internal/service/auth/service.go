package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sitepulse/erp-backend-go/internal/domain/auth"
	"github.com/sitepulse/erp-backend-go/internal/domain/user"
	"github.com/sitepulse/erp-backend-go/internal/pkg/jwt"
	"github.com/sitepulse/erp-backend-go/internal/repository/postgresql"
)

type authService struct {
	userRepo         user.UserRepository
	refreshTokenRepo postgresql.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(userRepo user.UserRepository, refreshTokenRepo postgresql.RefreshTokenRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *authService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, err := s.refreshTokenRepo.GetUserID(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented token is burned before new ones are issued.
	if err := s.refreshTokenRepo.Revoke(ctx, req.RefreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}

func (s *authService) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.refreshTokenRepo.Store(ctx, u.ID, refreshToken, refreshExp); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
