// file: internals/features/school/exercises/model/test_case_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TestCaseModel: data uji per exercise. Urutan grading ikut test_case_ordinal ASC.
type TestCaseModel struct {
	TestCaseID uuid.UUID `gorm:"column:test_case_id;type:uuid;default:gen_random_uuid();primaryKey" json:"test_case_id"`

	TestCaseExerciseID uuid.UUID `gorm:"column:test_case_exercise_id;type:uuid;not null;index:idx_test_cases_exercise" json:"test_case_exercise_id"`

	TestCaseOrdinal        int    `gorm:"column:test_case_ordinal;not null;default:1" json:"test_case_ordinal"`
	TestCaseStdin          string `gorm:"column:test_case_stdin;type:text;not null;default:''" json:"test_case_stdin"`
	TestCaseExpectedOutput string `gorm:"column:test_case_expected_output;type:text;not null" json:"test_case_expected_output"`

	TestCaseCreatedAt time.Time `gorm:"column:test_case_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"test_case_created_at"`
	TestCaseUpdatedAt time.Time `gorm:"column:test_case_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"test_case_updated_at"`
}

func (TestCaseModel) TableName() string { return "test_cases" }
