// file: internals/features/school/exercises/route/exercise_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelaskode_backend/internals/constants"
	exController "kelaskode_backend/internals/features/school/exercises/controller"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

// ExerciseRoutes
// Base: /api/t/exercises (teacher) & /api/u/exercises (student, tanpa test case)
func ExerciseTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := exController.NewExerciseController(db)

	g := router.Group("/exercises",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("soal"), constants.TeacherAndAbove...))
	g.Post("/", ctrl.Create)
	g.Get("/list", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Get("/:id/test-cases", ctrl.ListTestCases)
	g.Put("/:id/test-cases", ctrl.ReplaceTestCases)
}

func ExerciseUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := exController.NewExerciseController(db)

	g := router.Group("/exercises")
	g.Get("/:id", ctrl.GetByIDStudent)
}
