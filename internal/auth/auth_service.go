package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "leaveflow/internal/auth/errors"
	"leaveflow/internal/domain"
	"leaveflow/internal/shared/apperror"
	"leaveflow/internal/shared/contextutil"
	"leaveflow/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type Config struct {
	JWTSecret        string
	TokenTTL         time.Duration
	AllowAdminSignup bool
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Me(ctx context.Context, caller domain.Caller) (user.UserResponse, error)
}

type service struct {
	users  user.Repository
	signup user.Service
	cfg    Config
	now    func() time.Time
	logger *zap.Logger
}

func NewService(users user.Repository, signup user.Service, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &service{users: users, signup: signup, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Info("login unknown email", zap.String("email", email))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		l.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		l.Info("login wrong password", zap.String("user_id", u.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	token, err := s.generateToken(u.ID.String(), u.Role, expiresAt)
	if err != nil {
		l.Error("login token signing failed", zap.Error(err))
		return LoginResponse{}, apperror.Wrap(err, autherrors.ErrTokenGenerationFailed.Code, autherrors.ErrTokenGenerationFailed.Message, autherrors.ErrTokenGenerationFailed.HTTPStatus)
	}

	l.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return LoginResponse{
		User:        user.ToResponse(*u),
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error) {
	role, _ := domain.ParseRole(req.Role)
	if role == domain.RoleAdmin && !s.cfg.AllowAdminSignup {
		contextutil.GetLogger(ctx, s.logger).Warn("admin self-registration refused", zap.String("email", req.Email))
		return user.UserResponse{}, autherrors.ErrAdminSignupDisabled
	}

	return s.signup.Register(ctx, user.CreateUserRequest{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Role:       req.Role,
	})
}

func (s *service) Me(ctx context.Context, caller domain.Caller) (user.UserResponse, error) {
	if !caller.Authenticated() {
		return user.UserResponse{}, apperror.ErrUnauthorized
	}
	return s.signup.GetByID(ctx, caller.UserID.String())
}

func (s *service) generateToken(userID, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
