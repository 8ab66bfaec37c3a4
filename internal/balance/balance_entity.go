package balance

import (
	"time"

	"leaveflow/internal/user"

	"github.com/google/uuid"
)

type Balance struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_leave_balance_user_type,priority:1"`
	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null;uniqueIndex:uq_leave_balance_user_type,priority:2"`
	TotalDays int       `gorm:"column:total_days;not null"`
	UsedDays  int       `gorm:"column:used_days;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User *user.User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Balance) TableName() string {
	return "leave_balance"
}

// AvailableDays may be negative after an admin lowers the capacity below
// what was already used.
func (b Balance) AvailableDays() int {
	return b.TotalDays - b.UsedDays
}
