// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelaskode_backend/internals/constants"
	classController "kelaskode_backend/internals/features/school/classes/controller"
	authMiddleware "kelaskode_backend/internals/middlewares/auth"
)

// ClassRoutes
// Base: /api/t/classes (teacher) & /api/u/classes (user read-only)
func ClassTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	g := router.Group("/classes",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("kelas"), constants.TeacherAndAbove...))
	g.Post("/", ctrl.Create)
	g.Get("/list", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/students", ctrl.AddStudent)
	g.Get("/:id/students", ctrl.ListStudents)
}

func ClassUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	g := router.Group("/classes")
	g.Get("/list", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
