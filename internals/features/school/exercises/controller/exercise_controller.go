// file: internals/features/school/exercises/controller/exercise_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kelaskode_backend/internals/features/school/exercises/dto"
	exModel "kelaskode_backend/internals/features/school/exercises/model"
	helper "kelaskode_backend/internals/helpers"
)

type ExerciseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{DB: db, Validator: validator.New()}
}

/* =========================
   Handlers (TEACHER)
========================= */

// POST /
func (ctrl *ExerciseController) Create(c *fiber.Ctx) error {
	var body dto.CreateExerciseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacherID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	m := exModel.ExerciseModel{
		ExerciseTeacherID:        teacherID,
		ExerciseTitle:            body.ExerciseTitle,
		ExerciseStatement:        body.ExerciseStatement,
		ExerciseTimeLimitSeconds: 2,
		ExerciseMemoryLimitMB:    128,
		ExerciseIsActive:         true,
	}
	if body.ExerciseTimeLimitSeconds != nil {
		m.ExerciseTimeLimitSeconds = *body.ExerciseTimeLimitSeconds
	}
	if body.ExerciseMemoryLimitMB != nil {
		m.ExerciseMemoryLimitMB = *body.ExerciseMemoryLimitMB
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}
	return helper.JsonCreated(c, "Soal berhasil dibuat", dto.FromExerciseModel(&m))
}

// GET /list
func (ctrl *ExerciseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&exModel.ExerciseModel{})
	if tid := c.Query("teacher_id"); tid != "" {
		q = q.Where("exercise_teacher_id = ?", tid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
	}

	var list []exModel.ExerciseModel
	if err := q.Order("exercise_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar soal")
	}

	return helper.JsonList(c, "ok", dto.FromExerciseModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:id
func (ctrl *ExerciseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	var m exModel.ExerciseModel
	if err := ctrl.DB.First(&m, "exercise_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	return helper.JsonOK(c, "ok", dto.FromExerciseModel(&m))
}

// PATCH /:id
func (ctrl *ExerciseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	var body dto.UpdateExerciseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	upd := body.ToUpdates()
	if len(upd) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	res := ctrl.DB.Model(&exModel.ExerciseModel{}).
		Where("exercise_id = ?", id).
		Updates(upd)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Soal diperbarui", nil)
}

// DELETE /:id (soft delete)
func (ctrl *ExerciseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	res := ctrl.DB.Delete(&exModel.ExerciseModel{}, "exercise_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Soal dihapus", nil)
}

/* =========================
   Test cases
========================= */

// GET /:id/test-cases
func (ctrl *ExerciseController) ListTestCases(c *fiber.Ctx) error {
	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	var list []exModel.TestCaseModel
	if err := ctrl.DB.
		Where("test_case_exercise_id = ?", exerciseID).
		Order("test_case_ordinal ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil test case")
	}
	return helper.JsonOK(c, "ok", dto.FromTestCaseModels(list))
}

// PUT /:id/test-cases — ganti seluruh test case dalam satu transaksi
func (ctrl *ExerciseController) ReplaceTestCases(c *fiber.Ctx) error {
	exerciseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	var body dto.ReplaceTestCasesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	ctrl.DB.Model(&exModel.ExerciseModel{}).
		Where("exercise_id = ?", exerciseID).
		Count(&exists)
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("test_case_exercise_id = ?", exerciseID).
			Delete(&exModel.TestCaseModel{}).Error; err != nil {
			return err
		}
		rows := make([]exModel.TestCaseModel, 0, len(body.TestCases))
		for _, tc := range body.TestCases {
			rows = append(rows, exModel.TestCaseModel{
				TestCaseExerciseID:     exerciseID,
				TestCaseOrdinal:        tc.TestCaseOrdinal,
				TestCaseStdin:          tc.TestCaseStdin,
				TestCaseExpectedOutput: tc.TestCaseExpectedOutput,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan test case")
	}
	return helper.JsonUpdated(c, "Test case diperbarui", nil)
}

/* =========================
   Handlers (STUDENT)
========================= */

// GET /:id — tampilan murid, test case tidak pernah ikut
func (ctrl *ExerciseController) GetByIDStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	var m exModel.ExerciseModel
	if err := ctrl.DB.
		First(&m, "exercise_id = ? AND exercise_is_active = TRUE", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	return helper.JsonOK(c, "ok", dto.FromExerciseModelStudent(&m))
}
