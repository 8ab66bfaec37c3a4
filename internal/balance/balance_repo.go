package balance

import (
	"context"
	"database/sql"

	"leaveflow/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, rows []Balance) error
	FindByUserAndType(ctx context.Context, userID, leaveType string) (*Balance, error)
	FindAllByUser(ctx context.Context, userID string) ([]Balance, error)
	IncrementUsedIfAvailable(ctx context.Context, userID, leaveType string, days int) (bool, error)
	UpdateTotalDays(ctx context.Context, userID, leaveType string, totalDays int) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateBatch(ctx context.Context, rows []Balance) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(&rows).Error
}

func (r *repository) FindByUserAndType(ctx context.Context, userID, leaveType string) (*Balance, error) {
	var b Balance
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		First(&b).Error
	return &b, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Balance, error) {
	var rows []Balance
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

// IncrementUsedIfAvailable adds days to used_days only while the row still
// has that many days available. false means nothing was updated.
func (r *repository) IncrementUsedIfAvailable(ctx context.Context, userID, leaveType string, days int) (bool, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Balance{}).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		Where("total_days - used_days >= ?", days).
		Updates(map[string]any{
			"used_days": gorm.Expr("used_days + ?", days),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) UpdateTotalDays(ctx context.Context, userID, leaveType string, totalDays int) (bool, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Balance{}).
		Where("user_id = ? AND leave_type = ?", userID, leaveType).
		Updates(map[string]any{
			"total_days": totalDays,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
