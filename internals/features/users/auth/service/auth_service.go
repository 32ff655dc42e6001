// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kelaskode_backend/internals/configs"
	"kelaskode_backend/internals/constants"
	authModel "kelaskode_backend/internals/features/users/auth/model"
	authRepo "kelaskode_backend/internals/features/users/auth/repository"
)

/* ==========================
   Const & Types
========================== */

const accessTTLDefault = 24 * time.Hour

/* ==========================
   Password
========================== */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   TOKEN & SESSION ISSUANCE
========================== */

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func buildAccessClaims(user *authModel.UserModel, sessionToken string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"sid":       sessionToken,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

// IssueSession membuat session row + access token untuk user yang baru login.
//
// Kebijakan satu sesi: untuk role yang tunduk (student), semua sesi lama
// dimatikan dan sesi baru dibuat dalam SATU transaksi (invalidate-then-create).
// Dua login hampir bersamaan masih bisa saling selip — kontrak fungsional
// mentolerir jendela singkat itu; yang penting invalidasi tidak pernah
// gagal diam-diam: jumlahnya selalu dicatat di log.
func IssueSession(sessions *authRepo.SessionRepository, user *authModel.UserModel, ip, userAgent string) (accessToken string, err error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	sessionToken := uuid.NewString()
	ipPtr := strptr(ip)
	uaPtr := strptr(userAgent)

	if constants.IsSingleSessionRole(user.UserRole) {
		invalidated, err := sessions.ReplaceActiveSession(user.UserID, sessionToken, ipPtr, uaPtr)
		if err != nil {
			log.Printf("[ERROR] Gagal replace session user=%s: %v", user.UserID, err)
			return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sesi login")
		}
		if invalidated > 0 {
			log.Printf("[INFO] Single-session: %d sesi lama user=%s dimatikan", invalidated, user.UserID)
		}
	} else {
		if err := sessions.CreateSession(user.UserID, sessionToken, ipPtr, uaPtr); err != nil {
			log.Printf("[ERROR] Gagal membuat session user=%s: %v", user.UserID, err)
			return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sesi login")
		}
	}

	now := time.Now().UTC()
	claims := buildAccessClaims(user, sessionToken, now)
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return accessToken, nil
}

// RevokeSession mematikan sesi milik token ini saat logout. Idempotent.
func RevokeSession(sessions *authRepo.SessionRepository, userID uuid.UUID, sessionToken string) {
	if sessionToken == "" {
		return
	}
	n, err := sessions.InvalidateToken(userID, sessionToken)
	if err != nil {
		log.Printf("[WARN] Gagal invalidasi sesi logout user=%s: %v", userID, err)
		return
	}
	if n == 0 {
		log.Printf("[INFO] Logout tanpa sesi aktif (sudah dimatikan di tempat lain) user=%s", userID)
	}
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
