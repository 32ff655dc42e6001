// file: internals/features/school/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kelaskode_backend/internals/features/school/submissions/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type SubmitRequest struct {
	ExerciseID   uuid.UUID  `json:"exercise_id" validate:"required"`
	AssignmentID *uuid.UUID `json:"assignment_id"`
	Code         string     `json:"code" validate:"required"`
	Language     string     `json:"language" validate:"required,oneof=c cpp java python javascript"`
}

type TestRunRequest struct {
	Code           string `json:"code" validate:"required"`
	Language       string `json:"language" validate:"required,oneof=c cpp java python javascript"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type SubmissionResponse struct {
	SubmissionID           uuid.UUID      `json:"submission_id"`
	SubmissionExerciseID   uuid.UUID      `json:"submission_exercise_id"`
	SubmissionAssignmentID *uuid.UUID     `json:"submission_assignment_id,omitempty"`
	SubmissionLanguage     string         `json:"submission_language"`
	SubmissionStatus       string         `json:"submission_status"`
	SubmissionMessage      string         `json:"submission_message"`
	SubmissionPassed       int            `json:"submission_passed"`
	SubmissionTotal        int            `json:"submission_total"`
	SubmissionTimeSec      *string        `json:"submission_time_sec,omitempty"`
	SubmissionMemoryKB     *int           `json:"submission_memory_kb,omitempty"`
	SubmissionCompile      *string        `json:"submission_compile_output,omitempty"`
	SubmissionTestResults  datatypes.JSON `json:"submission_test_results,omitempty"`
	SubmissionCreatedAt    time.Time      `json:"submission_created_at"`
}

func FromSubmissionModel(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionExerciseID:   m.SubmissionExerciseID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionLanguage:     m.SubmissionLanguage,
		SubmissionStatus:       m.SubmissionStatus,
		SubmissionMessage:      m.SubmissionMessage,
		SubmissionPassed:       m.SubmissionPassed,
		SubmissionTotal:        m.SubmissionTotal,
		SubmissionTimeSec:      m.SubmissionTimeSec,
		SubmissionMemoryKB:     m.SubmissionMemoryKB,
		SubmissionCompile:      m.SubmissionCompileOutput,
		SubmissionTestResults:  m.SubmissionTestResults,
		SubmissionCreatedAt:    m.SubmissionCreatedAt,
	}
}

func FromSubmissionModels(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromSubmissionModel(&ms[i]))
	}
	return out
}
