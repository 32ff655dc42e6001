// file: internals/features/school/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Jenis assignment
const (
	AssignmentKindTask = "task"
	AssignmentKindExam = "exam"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentClassID    uuid.UUID `gorm:"column:assignment_class_id;type:uuid;not null;index:idx_assignments_class" json:"assignment_class_id"`
	AssignmentExerciseID uuid.UUID `gorm:"column:assignment_exercise_id;type:uuid;not null;index" json:"assignment_exercise_id"`

	AssignmentTitle string `gorm:"column:assignment_title;type:varchar(150);not null" json:"assignment_title"`
	AssignmentKind  string `gorm:"column:assignment_kind;type:varchar(10);not null;default:'task'" json:"assignment_kind"`

	AssignmentOpenAt  *time.Time `gorm:"column:assignment_open_at;type:timestamptz" json:"assignment_open_at,omitempty"`
	AssignmentCloseAt *time.Time `gorm:"column:assignment_close_at;type:timestamptz" json:"assignment_close_at,omitempty"`

	// Khusus exam: daftar user_id murid yang sudah di-enable gurunya.
	AssignmentEnabledStudents pq.StringArray `gorm:"column:assignment_enabled_students;type:text[]" json:"assignment_enabled_students"`

	// Khusus exam: pembatasan IP. Isi allowed_ips boleh IP literal atau CIDR.
	AssignmentRequireIP  bool           `gorm:"column:assignment_require_ip;not null;default:false" json:"assignment_require_ip"`
	AssignmentAllowedIPs pq.StringArray `gorm:"column:assignment_allowed_ips;type:text[]" json:"assignment_allowed_ips"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) IsExam() bool { return m.AssignmentKind == AssignmentKindExam }

// IsOpenAt: window nil artinya tidak dibatasi sisi itu.
func (m *AssignmentModel) IsOpenAt(t time.Time) bool {
	if m.AssignmentOpenAt != nil && t.Before(*m.AssignmentOpenAt) {
		return false
	}
	if m.AssignmentCloseAt != nil && t.After(*m.AssignmentCloseAt) {
		return false
	}
	return true
}

// IsStudentEnabled: cek roster enable per murid (exam saja yang memakai ini).
func (m *AssignmentModel) IsStudentEnabled(userID uuid.UUID) bool {
	want := userID.String()
	for _, id := range m.AssignmentEnabledStudents {
		if id == want {
			return true
		}
	}
	return false
}
