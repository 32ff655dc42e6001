// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelaskode_backend/internals/constants"
	asgController "kelaskode_backend/internals/features/school/assignments/controller"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

// AssignmentRoutes
// Base: /api/t/assignments (teacher) & /api/u/assignments (student)
func AssignmentTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := asgController.NewAssignmentController(db)

	g := router.Group("/assignments",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("assignment"), constants.TeacherAndAbove...))
	g.Post("/", ctrl.Create)
	g.Get("/list", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/enable", ctrl.EnableStudent)
}

func AssignmentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := asgController.NewAssignmentController(db)

	g := router.Group("/assignments")
	g.Get("/list", ctrl.ListForStudent)
	g.Get("/:id", ctrl.GetByIDStudent)
}
