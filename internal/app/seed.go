package app

import (
	"context"
	"errors"

	"leaveflow/internal/config"
	"leaveflow/internal/domain"
	"leaveflow/internal/user"
	usererrors "leaveflow/internal/user/errors"

	"go.uber.org/zap"
)

var demoAccounts = []user.CreateUserRequest{
	{Name: "Admin", Email: "admin@company.com", Password: "admin123", Department: "Management", Role: string(domain.RoleAdmin)},
	{Name: "John Doe", Email: "john@company.com", Password: "emp123", Department: "Engineering", Role: string(domain.RoleEmployee)},
	{Name: "Sara Smith", Email: "sara@company.com", Password: "emp123", Department: "Marketing", Role: string(domain.RoleEmployee)},
}

// Seed registers the demo accounts. Accounts that already exist are left
// untouched, so running it twice is harmless.
func Seed(ctx context.Context, users user.Service, logger *zap.Logger) (int, error) {
	created := 0
	for _, acc := range demoAccounts {
		_, err := users.Register(ctx, acc)
		switch {
		case err == nil:
			created++
			logger.Info("seeded account", zap.String("email", acc.Email), zap.String("role", acc.Role))
		case errors.Is(err, usererrors.ErrEmailAlreadyRegistered):
			logger.Info("account already present", zap.String("email", acc.Email))
		default:
			return created, err
		}
	}
	return created, nil
}

func RunSeed(ctx context.Context, cfg config.Config) error {
	logger := zap.L().Named("app.seed")

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	modules, err := buildModules(cfg, sqlDB, gormDB, zap.L())
	if err != nil {
		return err
	}

	created, err := Seed(ctx, modules.Users, logger)
	if err != nil {
		return err
	}
	logger.Info("seed finished", zap.Int("created", created))
	return nil
}
