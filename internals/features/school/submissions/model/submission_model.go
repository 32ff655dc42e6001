// file: internals/features/school/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status submission. Sekali keluar dari pending statusnya final —
// submit ulang membuat baris baru, tidak pernah menilai ulang baris lama.
const (
	StatusPending           = "pending"
	StatusAccepted          = "accepted"
	StatusWrongAnswer       = "wrong_answer"
	StatusTimeLimitExceeded = "time_limit_exceeded"
	StatusRuntimeError      = "runtime_error"
	StatusCompilationError  = "compilation_error"
)

type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`

	SubmissionUserID       uuid.UUID  `gorm:"column:submission_user_id;type:uuid;not null;index:idx_submissions_user" json:"submission_user_id"`
	SubmissionExerciseID   uuid.UUID  `gorm:"column:submission_exercise_id;type:uuid;not null;index" json:"submission_exercise_id"`
	SubmissionAssignmentID *uuid.UUID `gorm:"column:submission_assignment_id;type:uuid;index" json:"submission_assignment_id,omitempty"`

	SubmissionCode     string `gorm:"column:submission_code;type:text;not null" json:"submission_code"`
	SubmissionLanguage string `gorm:"column:submission_language;type:varchar(20);not null" json:"submission_language"`

	SubmissionStatus string `gorm:"column:submission_status;type:varchar(25);not null;default:'pending';index" json:"submission_status"`

	// Hasil agregasi (diisi sekali saat status jadi terminal)
	SubmissionMessage       string  `gorm:"column:submission_message;type:text;not null;default:''" json:"submission_message"`
	SubmissionPassed        int     `gorm:"column:submission_passed;not null;default:0" json:"submission_passed"`
	SubmissionTotal         int     `gorm:"column:submission_total;not null;default:0" json:"submission_total"`
	SubmissionTimeSec       *string `gorm:"column:submission_time_sec;type:varchar(20)" json:"submission_time_sec,omitempty"`
	SubmissionMemoryKB      *int    `gorm:"column:submission_memory_kb" json:"submission_memory_kb,omitempty"`
	SubmissionCompileOutput *string `gorm:"column:submission_compile_output;type:text" json:"submission_compile_output,omitempty"`

	// Rincian per test case (array JSON), untuk tampilan diff di UI.
	SubmissionTestResults datatypes.JSON `gorm:"column:submission_test_results;type:jsonb" json:"submission_test_results,omitempty"`

	// Tidak pernah dihapus: jejak audit.
	SubmissionCreatedAt time.Time `gorm:"column:submission_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"column:submission_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
