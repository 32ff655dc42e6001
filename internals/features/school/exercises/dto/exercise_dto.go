// file: internals/features/school/exercises/dto/exercise_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kelaskode_backend/internals/features/school/exercises/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateExerciseRequest struct {
	ExerciseTitle     string `json:"exercise_title" validate:"required,min=3,max=150"`
	ExerciseStatement string `json:"exercise_statement" validate:"required"`

	ExerciseTimeLimitSeconds *int `json:"exercise_time_limit_seconds" validate:"omitempty,min=1,max=15"`
	ExerciseMemoryLimitMB    *int `json:"exercise_memory_limit_mb" validate:"omitempty,min=16,max=512"`
}

type UpdateExerciseRequest struct {
	ExerciseTitle     *string `json:"exercise_title" validate:"omitempty,min=3,max=150"`
	ExerciseStatement *string `json:"exercise_statement" validate:"omitempty"`

	ExerciseTimeLimitSeconds *int  `json:"exercise_time_limit_seconds" validate:"omitempty,min=1,max=15"`
	ExerciseMemoryLimitMB    *int  `json:"exercise_memory_limit_mb" validate:"omitempty,min=16,max=512"`
	ExerciseIsActive         *bool `json:"exercise_is_active"`
}

func (r *UpdateExerciseRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.ExerciseTitle != nil {
		updates["exercise_title"] = *r.ExerciseTitle
	}
	if r.ExerciseStatement != nil {
		updates["exercise_statement"] = *r.ExerciseStatement
	}
	if r.ExerciseTimeLimitSeconds != nil {
		updates["exercise_time_limit_seconds"] = *r.ExerciseTimeLimitSeconds
	}
	if r.ExerciseMemoryLimitMB != nil {
		updates["exercise_memory_limit_mb"] = *r.ExerciseMemoryLimitMB
	}
	if r.ExerciseIsActive != nil {
		updates["exercise_is_active"] = *r.ExerciseIsActive
	}
	return updates
}

type UpsertTestCaseRequest struct {
	TestCaseOrdinal        int    `json:"test_case_ordinal" validate:"required,min=1"`
	TestCaseStdin          string `json:"test_case_stdin"`
	TestCaseExpectedOutput string `json:"test_case_expected_output" validate:"required"`
}

// ReplaceTestCasesRequest mengganti SELURUH test case exercise sekaligus.
type ReplaceTestCasesRequest struct {
	TestCases []UpsertTestCaseRequest `json:"test_cases" validate:"required,min=1,dive"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ExerciseResponse struct {
	ExerciseID               uuid.UUID `json:"exercise_id"`
	ExerciseTeacherID        uuid.UUID `json:"exercise_teacher_id"`
	ExerciseTitle            string    `json:"exercise_title"`
	ExerciseStatement        string    `json:"exercise_statement"`
	ExerciseTimeLimitSeconds int       `json:"exercise_time_limit_seconds"`
	ExerciseMemoryLimitMB    int       `json:"exercise_memory_limit_mb"`
	ExerciseIsActive         bool      `json:"exercise_is_active"`
	ExerciseCreatedAt        time.Time `json:"exercise_created_at"`
}

func FromExerciseModel(m *model.ExerciseModel) ExerciseResponse {
	return ExerciseResponse{
		ExerciseID:               m.ExerciseID,
		ExerciseTeacherID:        m.ExerciseTeacherID,
		ExerciseTitle:            m.ExerciseTitle,
		ExerciseStatement:        m.ExerciseStatement,
		ExerciseTimeLimitSeconds: m.ExerciseTimeLimitSeconds,
		ExerciseMemoryLimitMB:    m.ExerciseMemoryLimitMB,
		ExerciseIsActive:         m.ExerciseIsActive,
		ExerciseCreatedAt:        m.ExerciseCreatedAt,
	}
}

func FromExerciseModels(ms []model.ExerciseModel) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromExerciseModel(&ms[i]))
	}
	return out
}

// StudentExerciseResponse: versi murid, tanpa test case (stdin & expected dirahasiakan).
type StudentExerciseResponse struct {
	ExerciseID               uuid.UUID `json:"exercise_id"`
	ExerciseTitle            string    `json:"exercise_title"`
	ExerciseStatement        string    `json:"exercise_statement"`
	ExerciseTimeLimitSeconds int       `json:"exercise_time_limit_seconds"`
	ExerciseMemoryLimitMB    int       `json:"exercise_memory_limit_mb"`
}

func FromExerciseModelStudent(m *model.ExerciseModel) StudentExerciseResponse {
	return StudentExerciseResponse{
		ExerciseID:               m.ExerciseID,
		ExerciseTitle:            m.ExerciseTitle,
		ExerciseStatement:        m.ExerciseStatement,
		ExerciseTimeLimitSeconds: m.ExerciseTimeLimitSeconds,
		ExerciseMemoryLimitMB:    m.ExerciseMemoryLimitMB,
	}
}

type TestCaseResponse struct {
	TestCaseID             uuid.UUID `json:"test_case_id"`
	TestCaseOrdinal        int       `json:"test_case_ordinal"`
	TestCaseStdin          string    `json:"test_case_stdin"`
	TestCaseExpectedOutput string    `json:"test_case_expected_output"`
}

func FromTestCaseModels(ms []model.TestCaseModel) []TestCaseResponse {
	out := make([]TestCaseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, TestCaseResponse{
			TestCaseID:             m.TestCaseID,
			TestCaseOrdinal:        m.TestCaseOrdinal,
			TestCaseStdin:          m.TestCaseStdin,
			TestCaseExpectedOutput: m.TestCaseExpectedOutput,
		})
	}
	return out
}
