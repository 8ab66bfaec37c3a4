package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"leaveflow/internal/domain"
	"leaveflow/internal/shared/contextutil"
	usererrors "leaveflow/internal/user/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultDepartment = "General"

// BalanceInitializer seeds the leave balances of a freshly inserted user on
// the registration transaction.
type BalanceInitializer func(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	initializer BalanceInitializer
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, initializer BalanceInitializer, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		initializer: initializer,
		validate:    validator.New(),
		logger:      l,
	}
}

func (s *service) Register(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.buildUser(req)
	if err != nil {
		l.Warn("register user validation failed", zap.String("email", req.Email), zap.Error(err))
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}
	u.Password = string(hashed)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("register user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		l.Warn("register user persist failed", zap.String("email", u.Email), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if s.initializer != nil {
		if err := s.initializer(ctx, tx, u.ID); err != nil {
			l.Error("register user balance init failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error("register user commit failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
		zap.String("role", u.Role),
	)
	return ToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*u), nil
}

func (s *service) buildUser(req CreateUserRequest) (*User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, usererrors.ErrMissingRequiredFields
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, usererrors.ErrInvalidEmail
	}

	role := domain.RoleEmployee
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, usererrors.ErrInvalidRole
		}
		role = parsed
	}

	department := strings.TrimSpace(req.Department)
	if department == "" {
		department = DefaultDepartment
	}

	return &User{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Department: department,
		Role:       string(role),
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	if isUniqueViolation(err, "uq_users_email", "users.email") {
		return usererrors.ErrEmailAlreadyRegistered
	}
	return err
}
