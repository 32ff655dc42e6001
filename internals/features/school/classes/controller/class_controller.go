// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kelaskode_backend/internals/features/school/classes/dto"
	classModel "kelaskode_backend/internals/features/school/classes/model"
	helper "kelaskode_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validator: validator.New()}
}

/* =========================
   Handlers (TEACHER)
========================= */

// POST /
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
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

	m := body.ToModel(teacherID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(&m))
}

// GET /list
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&classModel.ClassModel{})
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		q = q.Where("class_teacher_id = ?", tid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var list []classModel.ClassModel
	if err := q.Order("class_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var m classModel.ClassModel
	if err := ctrl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// PATCH /:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var body dto.UpdateClassRequest
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
	res := ctrl.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ?", id).
		Updates(upd)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kelas diperbarui", nil)
}

// DELETE /:id (soft delete)
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	res := ctrl.DB.Delete(&classModel.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas dihapus", nil)
}

/* =========================
   Membership
========================= */

// POST /:id/students
func (ctrl *ClassController) AddStudent(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var body dto.AddClassStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	ctrl.DB.Model(&classModel.ClassStudentModel{}).
		Where("class_student_class_id = ? AND class_student_user_id = ?", classID, body.UserID).
		Count(&exists)
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa sudah terdaftar di kelas ini")
	}

	m := classModel.ClassStudentModel{
		ClassStudentClassID: classID,
		ClassStudentUserID:  body.UserID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan siswa")
	}
	return helper.JsonCreated(c, "Siswa ditambahkan ke kelas", m)
}

// GET /:id/students
func (ctrl *ClassController) ListStudents(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var list []classModel.ClassStudentModel
	if err := ctrl.DB.
		Where("class_student_class_id = ?", classID).
		Order("class_student_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.JsonOK(c, "ok", list)
}
