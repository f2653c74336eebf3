package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-workboard/internal/auth/errors"
	"go-workboard/internal/rbac"
	"go-workboard/internal/status"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Service interface {
	Login(ctx context.Context, username, password string) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	GetMe(ctx context.Context, employeeID string) (MeResponse, error)
}

type service struct {
	repo   Repository
	rbac   rbac.Service
	secret func() []byte
	logger *zap.Logger
}

func NewService(repo Repository, rbacService rbac.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:   repo,
		rbac:   rbacService,
		secret: func() []byte { return []byte(os.Getenv("JWT_SECRET")) },
		logger: l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	s.logger.Debug("login requested", zap.String("username", username))

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login unknown username", zap.String("username", username))
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("employee_id", account.ID.String()))
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if account.Status == status.EmployeeInactive {
		s.logger.Warn("login inactive account", zap.String("employee_id", account.ID.String()))
		return TokenResponse{}, autherrors.ErrAccountInactive
	}

	resp, err := s.issueTokens(account)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("employee_id", account.ID.String()),
		zap.String("role", account.Role),
	)
	return resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret(), nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	employeeID, _ := claims["employee_id"].(string)
	if _, err := uuid.Parse(employeeID); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	// reload so role and status changes apply on refresh
	account, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrUserNotFound
	}
	if account.Status == status.EmployeeInactive {
		return TokenResponse{}, autherrors.ErrAccountInactive
	}

	resp, err := s.issueTokens(account)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("refresh token success", zap.String("employee_id", employeeID))
	return resp, nil
}

func (s *service) GetMe(ctx context.Context, employeeID string) (MeResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return MeResponse{}, autherrors.ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return MeResponse{}, autherrors.ErrUserNotFound
	}

	permissions, err := s.rbac.PermissionsForRole(account.Role)
	if err != nil {
		s.logger.Error("get me load permissions failed", zap.String("role", account.Role), zap.Error(err))
		return MeResponse{}, err
	}

	return MeResponse{
		User:        toAuthResponse(account),
		Permissions: permissions,
	}, nil
}

func (s *service) issueTokens(account *Account) (TokenResponse, error) {
	access, err := s.generateToken(account, tokenTypeAccess, AccessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := s.generateToken(account, tokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		User:         toAuthResponse(account),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *service) generateToken(account *Account, tokenType string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     account.ID.String(),
		"employee_id": account.ID.String(),
		"role":        account.Role,
		"name":        account.Name,
		"typ":         tokenType,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret())
}

func toAuthResponse(account *Account) AuthResponse {
	return AuthResponse{
		ID:       account.ID.String(),
		Name:     account.Name,
		Email:    account.Email,
		Username: account.Username,
		Role:     account.Role,
	}
}
