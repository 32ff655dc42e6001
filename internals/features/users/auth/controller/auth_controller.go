// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelaskode_backend/internals/constants"
	dto "kelaskode_backend/internals/features/users/auth/dto"
	authModel "kelaskode_backend/internals/features/users/auth/model"
	authRepo "kelaskode_backend/internals/features/users/auth/repository"
	authService "kelaskode_backend/internals/features/users/auth/service"
	helper "kelaskode_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sessions  *authRepo.SessionRepository
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
		Sessions:  authRepo.NewSessionRepository(db),
	}
}

/* =========================
   Handlers
========================= */

// POST /register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authService.HashPassword(body.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := authModel.UserModel{
		UserName:     strings.TrimSpace(body.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(body.UserEmail)),
		UserPassword: hash,
		UserRole:     constants.RoleStudent,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUserModel(&user))
}

// POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	identifier := strings.TrimSpace(body.Identifier)
	var user authModel.UserModel
	err := ctrl.DB.
		Where("user_name = ? OR user_email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authService.CheckPasswordHash(user.UserPassword, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	// Buat sesi (single-session untuk student) + access token
	accessToken, err := authService.IssueSession(ctrl.Sessions, &user, helper.ClientIP(c), c.Get("User-Agent"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi login")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		User:        dto.FromUserModel(&user),
		AccessToken: accessToken,
	})
}

// POST /logout — matikan sesi milik token ini. Idempotent.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	sid, _ := c.Locals("session_token").(string)
	authService.RevokeSession(ctrl.Sessions, userID, sid)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromUserModel(&user))
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
