// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kelaskode_backend/internals/features/users/auth/controller"
	middlewares "kelaskode_backend/internals/middlewares"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

// AuthRoutes
// Base publik: /api/auth — register & login tanpa token.
// Logout & me butuh JWT.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	g := router.Group("/auth")
	g.Post("/register", ctrl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	g.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	g.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
