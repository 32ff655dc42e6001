// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(50);not null;unique" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;unique" json:"user_email"`

	// bcrypt hash, tidak pernah ikut response
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	// student | teacher | admin (lihat constants.AllRoles)
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
