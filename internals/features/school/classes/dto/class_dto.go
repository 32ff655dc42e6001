// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "kelaskode_backend/internals/features/school/classes/model"
)

/* =========================================================
   CREATE / UPDATE DTO
========================================================= */

type CreateClassRequest struct {
	ClassName        string  `json:"class_name" validate:"required,min=3,max=100"`
	ClassDescription *string `json:"class_description,omitempty"`
}

func (r CreateClassRequest) ToModel(teacherID uuid.UUID) classModel.ClassModel {
	return classModel.ClassModel{
		ClassName:        r.ClassName,
		ClassDescription: r.ClassDescription,
		ClassTeacherID:   teacherID,
		ClassIsActive:    true,
	}
}

type UpdateClassRequest struct {
	ClassName        *string `json:"class_name,omitempty" validate:"omitempty,min=3,max=100"`
	ClassDescription *string `json:"class_description,omitempty"`
	ClassIsActive    *bool   `json:"class_is_active,omitempty"`
}

func (r UpdateClassRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	if r.ClassName != nil {
		upd["class_name"] = *r.ClassName
	}
	if r.ClassDescription != nil {
		upd["class_description"] = *r.ClassDescription
	}
	if r.ClassIsActive != nil {
		upd["class_is_active"] = *r.ClassIsActive
	}
	return upd
}

type AddClassStudentRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ClassResponse struct {
	ClassID          uuid.UUID `json:"class_id"`
	ClassName        string    `json:"class_name"`
	ClassDescription *string   `json:"class_description,omitempty"`
	ClassTeacherID   uuid.UUID `json:"class_teacher_id"`
	ClassIsActive    bool      `json:"class_is_active"`
	ClassCreatedAt   time.Time `json:"class_created_at"`
}

func FromModel(m *classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:          m.ClassID,
		ClassName:        m.ClassName,
		ClassDescription: m.ClassDescription,
		ClassTeacherID:   m.ClassTeacherID,
		ClassIsActive:    m.ClassIsActive,
		ClassCreatedAt:   m.ClassCreatedAt,
	}
}

func FromModels(list []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
