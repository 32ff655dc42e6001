// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName        string    `gorm:"column:class_name;type:varchar(100);not null" json:"class_name"`
	ClassDescription *string   `gorm:"column:class_description;type:text" json:"class_description,omitempty"`
	ClassTeacherID   uuid.UUID `gorm:"column:class_teacher_id;type:uuid;not null;index" json:"class_teacher_id"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassStudentModel: keanggotaan siswa di kelas.
type ClassStudentModel struct {
	ClassStudentID uuid.UUID `gorm:"column:class_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_student_id"`

	ClassStudentClassID uuid.UUID `gorm:"column:class_student_class_id;type:uuid;not null;index" json:"class_student_class_id"`
	ClassStudentUserID  uuid.UUID `gorm:"column:class_student_user_id;type:uuid;not null;index" json:"class_student_user_id"`

	ClassStudentCreatedAt time.Time `gorm:"column:class_student_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_student_created_at"`
}

func (ClassStudentModel) TableName() string { return "class_students" }
