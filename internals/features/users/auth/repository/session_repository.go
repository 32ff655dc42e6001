// file: internals/features/users/auth/repository/session_repository.go
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "kelaskode_backend/internals/features/users/auth/model"
)

/* ==========================
   Session Registry
========================== */

// SessionRepository memegang daftar sesi login per user. Kebijakan
// "siapa yang wajib satu sesi" BUKAN urusan komponen ini — caller
// (auth service) yang memutuskan kapan InvalidateAll dipanggil.
type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// CreateSession menambah baris sesi aktif baru. Side effect murni,
// tidak pernah menolak (selain error DB).
func (r *SessionRepository) CreateSession(userID uuid.UUID, token string, ip, userAgent *string) error {
	s := authModel.SessionModel{
		SessionUserID:     userID,
		SessionToken:      token,
		SessionIP:         ip,
		SessionUserAgent:  userAgent,
		SessionIsActive:   true,
		SessionLastSeenAt: time.Now().UTC(),
	}
	return r.DB.Create(&s).Error
}

// InvalidateAll mematikan semua sesi aktif milik user kecuali exceptToken
// (boleh kosong). Return: jumlah sesi yang dimatikan.
func (r *SessionRepository) InvalidateAll(userID uuid.UUID, exceptToken string) (int64, error) {
	q := r.DB.Model(&authModel.SessionModel{}).
		Where("session_user_id = ? AND session_is_active = TRUE", userID)
	if exceptToken != "" {
		q = q.Where("session_token <> ?", exceptToken)
	}
	res := q.Update("session_is_active", false)
	return res.RowsAffected, res.Error
}

// ReplaceActiveSession menjalankan invalidate-then-create dalam SATU
// transaksi. Jendela balapan dua login hampir bersamaan (lihat catatan di
// auth service) mengecil, walau mutual exclusion penuh tidak dijanjikan.
func (r *SessionRepository) ReplaceActiveSession(userID uuid.UUID, token string, ip, userAgent *string) (invalidated int64, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&authModel.SessionModel{}).
			Where("session_user_id = ? AND session_is_active = TRUE", userID).
			Update("session_is_active", false)
		if res.Error != nil {
			return res.Error
		}
		invalidated = res.RowsAffected

		s := authModel.SessionModel{
			SessionUserID:     userID,
			SessionToken:      token,
			SessionIP:         ip,
			SessionUserAgent:  userAgent,
			SessionIsActive:   true,
			SessionLastSeenAt: time.Now().UTC(),
		}
		return tx.Create(&s).Error
	})
	return invalidated, err
}

// InvalidateToken mematikan satu sesi berdasarkan tokennya (logout).
func (r *SessionRepository) InvalidateToken(userID uuid.UUID, token string) (int64, error) {
	res := r.DB.Model(&authModel.SessionModel{}).
		Where("session_user_id = ? AND session_token = ? AND session_is_active = TRUE", userID, token).
		Update("session_is_active", false)
	return res.RowsAffected, res.Error
}

// IsActive: true kalau pasangan (user, token) masih aktif. Side effect:
// refresh session_last_seen_at pada baris yang cocok.
func (r *SessionRepository) IsActive(userID uuid.UUID, token string) (bool, error) {
	res := r.DB.Model(&authModel.SessionModel{}).
		Where("session_user_id = ? AND session_token = ? AND session_is_active = TRUE", userID, token).
		Update("session_last_seen_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasActiveSession: ada sesi aktif apa pun untuk user ini? Dipakai gate
// ujian ("punya sesi hidup"), bukan validasi token si pemanggil.
func (r *SessionRepository) HasActiveSession(userID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.Model(&authModel.SessionModel{}).
		Where("session_user_id = ? AND session_is_active = TRUE", userID).
		Count(&n).Error
	return n > 0, err
}

// GetActiveSession mengambil sesi aktif paling baru, nil kalau tidak ada.
func (r *SessionRepository) GetActiveSession(userID uuid.UUID) (*authModel.SessionModel, error) {
	var s authModel.SessionModel
	err := r.DB.
		Where("session_user_id = ? AND session_is_active = TRUE", userID).
		Order("session_last_seen_at DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
