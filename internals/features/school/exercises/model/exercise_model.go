// file: internals/features/school/exercises/model/exercise_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseModel struct {
	ExerciseID uuid.UUID `gorm:"column:exercise_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exercise_id"`

	ExerciseTeacherID uuid.UUID `gorm:"column:exercise_teacher_id;type:uuid;not null;index" json:"exercise_teacher_id"`

	ExerciseTitle     string `gorm:"column:exercise_title;type:varchar(150);not null" json:"exercise_title"`
	ExerciseStatement string `gorm:"column:exercise_statement;type:text;not null" json:"exercise_statement"`

	// Limit dioper apa adanya ke judge (cpu_time_limit detik, memory MB)
	ExerciseTimeLimitSeconds int `gorm:"column:exercise_time_limit_seconds;not null;default:2" json:"exercise_time_limit_seconds"`
	ExerciseMemoryLimitMB    int `gorm:"column:exercise_memory_limit_mb;not null;default:128" json:"exercise_memory_limit_mb"`

	ExerciseIsActive bool `gorm:"column:exercise_is_active;not null;default:true" json:"exercise_is_active"`

	ExerciseCreatedAt time.Time      `gorm:"column:exercise_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"exercise_created_at"`
	ExerciseUpdatedAt time.Time      `gorm:"column:exercise_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"exercise_updated_at"`
	ExerciseDeletedAt gorm.DeletedAt `gorm:"column:exercise_deleted_at;index" json:"exercise_deleted_at,omitempty"`
}

func (ExerciseModel) TableName() string { return "exercises" }
