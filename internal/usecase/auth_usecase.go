package usecase

import (
	"context"
	"errors"
	"strings"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"
	"medical-appointment-assistant/internal/service"
	"medical-appointment-assistant/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uint, accessTokenID string) error
	Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error)
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Register(ctx, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	_ = u.auditService.RecordSession(ctx, user.ID, entity.AuditActionUserLogin, entity.JSON{"email": user.Email})

	return &dto.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uint, accessTokenID string) error {
	if err := u.tokenStore.Revoke(ctx, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	_ = u.auditService.RecordSession(ctx, userID, entity.AuditActionUserLogout, nil)
	return nil
}

// Authenticate validates the token signature and checks it has not been revoked
func (u *authUsecase) Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	active, err := u.tokenStore.IsActive(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return nil, err
	}
	if !active {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
