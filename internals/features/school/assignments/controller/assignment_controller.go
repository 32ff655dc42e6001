// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "kelaskode_backend/internals/features/school/assignments/dto"
	asgModel "kelaskode_backend/internals/features/school/assignments/model"
	helper "kelaskode_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db, Validator: validator.New()}
}

/* =========================
   Handlers (TEACHER)
========================= */

// POST /
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.AssignmentOpenAt != nil && body.AssignmentCloseAt != nil &&
		body.AssignmentCloseAt.Before(*body.AssignmentOpenAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu tutup harus setelah waktu buka")
	}

	m := body.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", dto.FromAssignmentModel(&m))
}

// GET /list
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&asgModel.AssignmentModel{})
	if cid := c.Query("class_id"); cid != "" {
		q = q.Where("assignment_class_id = ?", cid)
	}
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("assignment_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung assignment")
	}

	var list []asgModel.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar assignment")
	}

	return helper.JsonList(c, "ok", dto.FromAssignmentModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:id
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	var m asgModel.AssignmentModel
	if err := ctrl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	return helper.JsonOK(c, "ok", dto.FromAssignmentModel(&m))
}

// PATCH /:id
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	var body dto.UpdateAssignmentRequest
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
	res := ctrl.DB.Model(&asgModel.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Updates(upd)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Assignment diperbarui", nil)
}

// DELETE /:id (soft delete)
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	res := ctrl.DB.Delete(&asgModel.AssignmentModel{}, "assignment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Assignment dihapus", nil)
}

/* =========================
   Exam roster (enable/disable murid)
========================= */

// POST /:id/enable — idempotent, enable=false mencabut
func (ctrl *AssignmentController) EnableStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	var body dto.EnableStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m asgModel.AssignmentModel
	if err := ctrl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	if !m.IsExam() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enable murid hanya berlaku untuk exam")
	}

	want := body.UserID.String()
	roster := make(pq.StringArray, 0, len(m.AssignmentEnabledStudents)+1)
	for _, uid := range m.AssignmentEnabledStudents {
		if uid != want {
			roster = append(roster, uid)
		}
	}
	if body.Enabled {
		roster = append(roster, want)
	}

	if err := ctrl.DB.Model(&asgModel.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Update("assignment_enabled_students", roster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui roster exam")
	}

	msg := "Murid di-enable untuk exam"
	if !body.Enabled {
		msg = "Enable murid dicabut"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"assignment_enabled_students": roster})
}

/* =========================
   Handlers (STUDENT)
========================= */

// GET /list — murid hanya melihat assignment kelasnya sendiri
func (ctrl *AssignmentController) ListForStudent(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&asgModel.AssignmentModel{}).
		Where("assignment_class_id IN (?)",
			ctrl.DB.Table("class_students").
				Select("class_student_class_id").
				Where("class_student_user_id = ?", userID))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung assignment")
	}

	var list []asgModel.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar assignment")
	}

	return helper.JsonList(c, "ok", dto.FromAssignmentModelsStudent(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:id — tampilan murid
func (ctrl *AssignmentController) GetByIDStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	var m asgModel.AssignmentModel
	if err := ctrl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	return helper.JsonOK(c, "ok", dto.FromAssignmentModelStudent(&m))
}
