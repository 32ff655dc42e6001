// file: internals/features/school/submissions/controller/submission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kelaskode_backend/internals/features/school/submissions/dto"
	"kelaskode_backend/internals/features/school/submissions/repository"
	"kelaskode_backend/internals/features/school/submissions/service"
	helper "kelaskode_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.SubmissionService
	Repo      *repository.SubmissionRepository
}

func NewSubmissionController(db *gorm.DB, svc *service.SubmissionService, repo *repository.SubmissionRepository) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc,
		Repo:      repo,
	}
}

func (ctrl *SubmissionController) userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

/* =========================
   Handlers (STUDENT)
========================= */

// POST /submissions
// Memblok request selama grading berjalan (detik sampai puluhan detik,
// dibatasi cap polling judge).
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := ctrl.userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userRole, _ := c.Locals("user_role").(string)

	outcome := ctrl.Service.Submit(service.SubmitInput{
		UserID:       userID,
		UserRole:     userRole,
		ExerciseID:   body.ExerciseID,
		AssignmentID: body.AssignmentID,
		Code:         body.Code,
		Language:     body.Language,
		ObservedIP:   helper.ClientIP(c),
	})

	if outcome.HTTPStatus >= 400 {
		if outcome.Reason != "" {
			return helper.JsonErrorWithReason(c, outcome.HTTPStatus, outcome.Message, outcome.Reason)
		}
		return helper.JsonError(c, outcome.HTTPStatus, outcome.Message)
	}

	var data interface{}
	if outcome.Submission != nil {
		data = dto.FromSubmissionModel(outcome.Submission)
	}
	return c.Status(outcome.HTTPStatus).JSON(fiber.Map{
		"success": outcome.Success,
		"message": outcome.Message,
		"data":    data,
	})
}

// POST /submissions/test-run — coba-coba tanpa membuat submission
func (ctrl *SubmissionController) TestRun(c *fiber.Ctx) error {
	var body dto.TestRunRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	verdict, outcome := ctrl.Service.TestRun(service.TestRunInput{
		Code:           body.Code,
		Language:       body.Language,
		Stdin:          body.Stdin,
		ExpectedOutput: body.ExpectedOutput,
	})
	if outcome.HTTPStatus >= 400 {
		if outcome.Reason != "" {
			return helper.JsonErrorWithReason(c, outcome.HTTPStatus, outcome.Message, outcome.Reason)
		}
		return helper.JsonError(c, outcome.HTTPStatus, outcome.Message)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": outcome.Success,
		"message": outcome.Message,
		"data":    verdict,
	})
}

// GET /submissions/list — riwayat milik sendiri
func (ctrl *SubmissionController) ListMine(c *fiber.Ctx) error {
	userID, err := ctrl.userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var exerciseID *uuid.UUID
	if raw := c.Query("exercise_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "exercise_id tidak valid")
		}
		exerciseID = &id
	}

	list, total, err := ctrl.Repo.ListByUser(userID, exerciseID, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat submission")
	}
	return helper.JsonList(c, "ok", dto.FromSubmissionModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /submissions/:id — detail, hanya milik sendiri
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	userID, err := ctrl.userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	m, err := ctrl.Repo.GetByID(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	if m == nil || m.SubmissionUserID != userID {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.FromSubmissionModel(m))
}

/* =========================
   Handlers (TEACHER)
========================= */

// GET /submissions/by-assignment/:id — rekap per assignment
func (ctrl *SubmissionController) ListByAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	list, total, err := ctrl.Repo.ListByAssignment(assignmentID, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.JsonList(c, "ok", dto.FromSubmissionModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
