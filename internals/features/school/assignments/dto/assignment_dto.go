// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"kelaskode_backend/internals/features/school/assignments/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAssignmentRequest struct {
	AssignmentClassID    uuid.UUID `json:"assignment_class_id" validate:"required"`
	AssignmentExerciseID uuid.UUID `json:"assignment_exercise_id" validate:"required"`
	AssignmentTitle      string    `json:"assignment_title" validate:"required,min=3,max=150"`
	AssignmentKind       string    `json:"assignment_kind" validate:"required,oneof=task exam"`

	AssignmentOpenAt  *time.Time `json:"assignment_open_at"`
	AssignmentCloseAt *time.Time `json:"assignment_close_at"`

	AssignmentRequireIP  bool     `json:"assignment_require_ip"`
	AssignmentAllowedIPs []string `json:"assignment_allowed_ips"`
}

func (r *CreateAssignmentRequest) ToModel() model.AssignmentModel {
	return model.AssignmentModel{
		AssignmentClassID:         r.AssignmentClassID,
		AssignmentExerciseID:      r.AssignmentExerciseID,
		AssignmentTitle:           r.AssignmentTitle,
		AssignmentKind:            r.AssignmentKind,
		AssignmentOpenAt:          r.AssignmentOpenAt,
		AssignmentCloseAt:         r.AssignmentCloseAt,
		AssignmentRequireIP:       r.AssignmentRequireIP,
		AssignmentAllowedIPs:      pq.StringArray(r.AssignmentAllowedIPs),
		AssignmentEnabledStudents: pq.StringArray{},
	}
}

type UpdateAssignmentRequest struct {
	AssignmentTitle *string `json:"assignment_title" validate:"omitempty,min=3,max=150"`

	AssignmentOpenAt  *time.Time `json:"assignment_open_at"`
	AssignmentCloseAt *time.Time `json:"assignment_close_at"`

	AssignmentRequireIP  *bool     `json:"assignment_require_ip"`
	AssignmentAllowedIPs *[]string `json:"assignment_allowed_ips"`
}

func (r *UpdateAssignmentRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.AssignmentTitle != nil {
		updates["assignment_title"] = *r.AssignmentTitle
	}
	if r.AssignmentOpenAt != nil {
		updates["assignment_open_at"] = *r.AssignmentOpenAt
	}
	if r.AssignmentCloseAt != nil {
		updates["assignment_close_at"] = *r.AssignmentCloseAt
	}
	if r.AssignmentRequireIP != nil {
		updates["assignment_require_ip"] = *r.AssignmentRequireIP
	}
	if r.AssignmentAllowedIPs != nil {
		updates["assignment_allowed_ips"] = pq.StringArray(*r.AssignmentAllowedIPs)
	}
	return updates
}

// EnableStudentRequest: guru meng-enable / disable satu murid untuk exam.
type EnableStudentRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Enabled bool      `json:"enabled"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AssignmentResponse struct {
	AssignmentID         uuid.UUID  `json:"assignment_id"`
	AssignmentClassID    uuid.UUID  `json:"assignment_class_id"`
	AssignmentExerciseID uuid.UUID  `json:"assignment_exercise_id"`
	AssignmentTitle      string     `json:"assignment_title"`
	AssignmentKind       string     `json:"assignment_kind"`
	AssignmentOpenAt     *time.Time `json:"assignment_open_at,omitempty"`
	AssignmentCloseAt    *time.Time `json:"assignment_close_at,omitempty"`
	AssignmentRequireIP  bool       `json:"assignment_require_ip"`
	AssignmentAllowedIPs []string   `json:"assignment_allowed_ips,omitempty"`
	AssignmentEnabled    []string   `json:"assignment_enabled_students,omitempty"`
	AssignmentCreatedAt  time.Time  `json:"assignment_created_at"`
}

func FromAssignmentModel(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:         m.AssignmentID,
		AssignmentClassID:    m.AssignmentClassID,
		AssignmentExerciseID: m.AssignmentExerciseID,
		AssignmentTitle:      m.AssignmentTitle,
		AssignmentKind:       m.AssignmentKind,
		AssignmentOpenAt:     m.AssignmentOpenAt,
		AssignmentCloseAt:    m.AssignmentCloseAt,
		AssignmentRequireIP:  m.AssignmentRequireIP,
		AssignmentAllowedIPs: m.AssignmentAllowedIPs,
		AssignmentEnabled:    m.AssignmentEnabledStudents,
		AssignmentCreatedAt:  m.AssignmentCreatedAt,
	}
}

func FromAssignmentModels(ms []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromAssignmentModel(&ms[i]))
	}
	return out
}

// StudentAssignmentResponse: tampilan murid, allow-list IP & roster tidak diekspos.
type StudentAssignmentResponse struct {
	AssignmentID         uuid.UUID  `json:"assignment_id"`
	AssignmentExerciseID uuid.UUID  `json:"assignment_exercise_id"`
	AssignmentTitle      string     `json:"assignment_title"`
	AssignmentKind       string     `json:"assignment_kind"`
	AssignmentOpenAt     *time.Time `json:"assignment_open_at,omitempty"`
	AssignmentCloseAt    *time.Time `json:"assignment_close_at,omitempty"`
}

func FromAssignmentModelStudent(m *model.AssignmentModel) StudentAssignmentResponse {
	return StudentAssignmentResponse{
		AssignmentID:         m.AssignmentID,
		AssignmentExerciseID: m.AssignmentExerciseID,
		AssignmentTitle:      m.AssignmentTitle,
		AssignmentKind:       m.AssignmentKind,
		AssignmentOpenAt:     m.AssignmentOpenAt,
		AssignmentCloseAt:    m.AssignmentCloseAt,
	}
}

func FromAssignmentModelsStudent(ms []model.AssignmentModel) []StudentAssignmentResponse {
	out := make([]StudentAssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromAssignmentModelStudent(&ms[i]))
	}
	return out
}
