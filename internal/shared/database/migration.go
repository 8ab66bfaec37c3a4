package database

import (
	"fmt"

	"leaveflow/internal/balance"
	"leaveflow/internal/leave"
	"leaveflow/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates users, leave_balance and leave_requests.
// Parents are migrated first so the foreign keys resolve.
func Migrate(db *gorm.DB) error {
	models := []any{
		&user.User{},
		&balance.Balance{},
		&leave.LeaveRequest{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	zap.L().Named("database").Info("schema migrated", zap.Int("tables", len(models)))
	return nil
}
