package leave

import (
	"context"
	"database/sql"
	"time"

	"leaveflow/internal/domain"
	"leaveflow/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusUpdate moves one request from From to To. It only applies while the
// stored status still equals From.
type StatusUpdate struct {
	ID           string
	From         domain.LeaveStatus
	To           domain.LeaveStatus
	AdminComment *string
	DecidedBy    *uuid.UUID
	DecidedAt    *time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit("User").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := dbtx.Conn(ctx, r.db, r.tx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("user_id = ?", userID).
		Order("applied_on DESC").
		Find(&leaves).Error
	return leaves, err
}

// UpdateStatus is a compare-and-set on status. false means the request was
// missing or no longer in u.From, and nothing was written.
func (r *repository) UpdateStatus(ctx context.Context, u StatusUpdate) (bool, error) {
	updates := map[string]any{
		"status": u.To.String(),
	}
	if u.AdminComment != nil {
		updates["admin_comment"] = *u.AdminComment
	}
	if u.DecidedBy != nil {
		updates["decided_by"] = *u.DecidedBy
	}
	if u.DecidedAt != nil {
		updates["decided_at"] = *u.DecidedAt
	}

	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", u.ID, u.From.String()).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
