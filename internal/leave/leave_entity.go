package leave

import (
	"time"

	"leaveflow/internal/user"

	"github.com/google/uuid"
)

// LeaveRequest rows are never deleted. Only Status and the decision columns
// change after insert, and only while Status is pending.
type LeaveRequest struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leave_requests_user_applied,priority:1"`
	LeaveType string    `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`
	Days      int       `gorm:"column:days;not null"`
	Reason    string    `gorm:"column:reason;type:text"`

	Status       string     `gorm:"column:status;type:varchar(20);not null;default:pending;index:idx_leave_requests_status_applied,priority:1"`
	AdminComment *string    `gorm:"column:admin_comment;type:text"`
	DecidedBy    *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecidedAt    *time.Time `gorm:"column:decided_at"`

	AppliedOn time.Time `gorm:"column:applied_on;not null;index:idx_leave_requests_user_applied,priority:2;index:idx_leave_requests_status_applied,priority:2"`

	User *user.User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
