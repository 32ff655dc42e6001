// file: internals/features/school/submissions/route/submission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelaskode_backend/internals/configs"
	"kelaskode_backend/internals/constants"
	submissionController "kelaskode_backend/internals/features/school/submissions/controller"
	"kelaskode_backend/internals/features/school/submissions/repository"
	"kelaskode_backend/internals/features/school/submissions/service"
	authRepository "kelaskode_backend/internals/features/users/auth/repository"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

func buildController(db *gorm.DB, cfg configs.JudgeConfig) *submissionController.SubmissionController {
	repo := repository.NewSubmissionRepository(db)
	judge := service.NewJudgeClient(cfg)
	grader := service.NewGradingService(judge)
	gate := service.NewAdmissionService(authRepository.NewSessionRepository(db))
	svc := service.NewSubmissionService(db, repo, grader, gate, cfg)
	return submissionController.NewSubmissionController(db, svc, repo)
}

// SubmissionRoutes
// Base: /api/u/submissions (student) & /api/t/submissions (teacher recap)
func SubmissionUserRoutes(router fiber.Router, db *gorm.DB, cfg configs.JudgeConfig) {
	ctrl := buildController(db, cfg)

	g := router.Group("/submissions")
	g.Post("/", ctrl.Submit)
	g.Post("/test-run", ctrl.TestRun)
	g.Get("/list", ctrl.ListMine)
	g.Get("/:id", ctrl.GetByID)
}

func SubmissionTeacherRoutes(router fiber.Router, db *gorm.DB, cfg configs.JudgeConfig) {
	ctrl := buildController(db, cfg)

	g := router.Group("/submissions",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("submission"), constants.TeacherAndAbove...))
	g.Get("/by-assignment/:id", ctrl.ListByAssignment)
}
