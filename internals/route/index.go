// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelaskode_backend/internals/configs"
	asgRoute "kelaskode_backend/internals/features/school/assignments/route"
	classRoute "kelaskode_backend/internals/features/school/classes/route"
	exRoute "kelaskode_backend/internals/features/school/exercises/route"
	submissionRoute "kelaskode_backend/internals/features/school/submissions/route"
	authRoute "kelaskode_backend/internals/features/users/auth/route"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

// SetupRoutes
// /api/auth : publik (register, login)
// /api/u    : semua user ber-JWT (murid)
// /api/t    : guru & admin (role dicek per-group di masing-masing route)
func SetupRoutes(app *fiber.App, db *gorm.DB, judgeCfg configs.JudgeConfig) {
	api := app.Group("/api")

	// ===== Publik =====
	authRoute.AuthRoutes(api, db)

	// ===== User (JWT) =====
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	classRoute.ClassUserRoutes(user, db)
	exRoute.ExerciseUserRoutes(user, db)
	asgRoute.AssignmentUserRoutes(user, db)
	submissionRoute.SubmissionUserRoutes(user, db, judgeCfg)

	// ===== Teacher / Admin (JWT + role) =====
	teacher := api.Group("/t", authMiddleware.AuthMiddleware(db))
	classRoute.ClassTeacherRoutes(teacher, db)
	exRoute.ExerciseTeacherRoutes(teacher, db)
	asgRoute.AssignmentTeacherRoutes(teacher, db)
	submissionRoute.SubmissionTeacherRoutes(teacher, db, judgeCfg)
}
