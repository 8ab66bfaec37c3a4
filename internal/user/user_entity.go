package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password   string    `gorm:"column:password;type:varchar(255);not null"`
	Department string    `gorm:"column:department;type:varchar(100);not null;default:General"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:employee"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
