// file: internals/features/users/auth/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mencatat sesi login. Baris TIDAK PERNAH dihapus — sesi lama
// hanya dimatikan (session_is_active=false) supaya tetap ada jejak audit.
// Untuk role ber-kebijakan satu sesi (student), maksimal satu baris aktif
// per user pada satu waktu; login baru mematikan sesi sebelumnya.
type SessionModel struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`

	SessionUserID uuid.UUID `gorm:"column:session_user_id;type:uuid;not null;index" json:"session_user_id"`
	SessionToken  string    `gorm:"column:session_token;type:varchar(64);not null;index" json:"session_token"`

	SessionIP        *string `gorm:"column:session_ip;type:varchar(45)" json:"session_ip,omitempty"`
	SessionUserAgent *string `gorm:"column:session_user_agent;type:varchar(255)" json:"session_user_agent,omitempty"`

	SessionIsActive bool `gorm:"column:session_is_active;not null;default:true;index" json:"session_is_active"`

	SessionLastSeenAt time.Time `gorm:"column:session_last_seen_at;type:timestamptz;not null;default:now()" json:"session_last_seen_at"`
	SessionCreatedAt  time.Time `gorm:"column:session_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"session_created_at"`
}

func (SessionModel) TableName() string { return "sessions" }
