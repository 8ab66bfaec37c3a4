package report

import (
	"context"

	"leaveflow/internal/domain"
	"leaveflow/internal/leave"
	"leaveflow/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveFilter narrows request queries. Zero fields match everything.
type LeaveFilter struct {
	UserID string
	Status domain.LeaveStatus
	Limit  int
}

// EmployeeSummary is one row of the employee roll-up.
type EmployeeSummary struct {
	ID         uuid.UUID `gorm:"column:id"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Department string    `gorm:"column:department"`
	TotalDays  int       `gorm:"column:total_days"`
	UsedDays   int       `gorm:"column:used_days"`
}

type Repository interface {
	FindLeaves(ctx context.Context, f LeaveFilter) ([]leave.LeaveRequest, error)
	CountLeaves(ctx context.Context, f LeaveFilter) (int64, error)
	CountUsersByRole(ctx context.Context, role domain.Role) (int64, error)
	ListEmployeeSummaries(ctx context.Context) ([]EmployeeSummary, error)
	FindUserByID(ctx context.Context, id string) (*user.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) scope(ctx context.Context, f LeaveFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&leave.LeaveRequest{})
	if f.UserID != "" {
		q = q.Where("leave_requests.user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("leave_requests.status = ?", f.Status.String())
	}
	return q
}

func (r *repository) FindLeaves(ctx context.Context, f LeaveFilter) ([]leave.LeaveRequest, error) {
	var leaves []leave.LeaveRequest
	q := r.scope(ctx, f).
		Joins("User").
		Order("leave_requests.applied_on DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Find(&leaves).Error
	return leaves, err
}

func (r *repository) CountLeaves(ctx context.Context, f LeaveFilter) (int64, error) {
	var total int64
	err := r.scope(ctx, f).Count(&total).Error
	return total, err
}

func (r *repository) CountUsersByRole(ctx context.Context, role domain.Role) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("role = ?", string(role)).
		Count(&total).Error
	return total, err
}

func (r *repository) ListEmployeeSummaries(ctx context.Context) ([]EmployeeSummary, error) {
	var rows []EmployeeSummary
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id, users.name, users.email, users.department,
			COALESCE(SUM(leave_balance.total_days), 0) AS total_days,
			COALESCE(SUM(leave_balance.used_days), 0) AS used_days`).
		Joins("LEFT JOIN leave_balance ON leave_balance.user_id = users.id").
		Where("users.role = ?", string(domain.RoleEmployee)).
		Group("users.id, users.name, users.email, users.department").
		Order("users.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindUserByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}
