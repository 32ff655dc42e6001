// file: internals/features/school/submissions/repository/submission_repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionModel "kelaskode_backend/internals/features/school/submissions/model"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreatePending mempersist submission berstatus pending SEBELUM penilaian
// dimulai, jadi crash di tengah grading tetap meninggalkan jejak audit.
func (r *SubmissionRepository) CreatePending(m *submissionModel.SubmissionModel) error {
	m.SubmissionStatus = submissionModel.StatusPending
	return r.DB.Create(m).Error
}

// Finalize memindahkan submission dari pending ke status terminal.
// Guard WHERE status='pending' menjaga invariannya: sekali terminal,
// tidak pernah dinilai ulang di tempat.
func (r *SubmissionRepository) Finalize(id uuid.UUID, updates map[string]interface{}) error {
	res := r.DB.Model(&submissionModel.SubmissionModel{}).
		Where("submission_id = ? AND submission_status = ?", id, submissionModel.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("submission %s sudah terminal atau tidak ada", id)
	}
	return nil
}

func (r *SubmissionRepository) GetByID(id uuid.UUID) (*submissionModel.SubmissionModel, error) {
	var m submissionModel.SubmissionModel
	err := r.DB.First(&m, "submission_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByUser: riwayat submission milik satu user, terbaru dulu.
func (r *SubmissionRepository) ListByUser(userID uuid.UUID, exerciseID *uuid.UUID, offset, limit int) ([]submissionModel.SubmissionModel, int64, error) {
	q := r.DB.Model(&submissionModel.SubmissionModel{}).
		Where("submission_user_id = ?", userID)
	if exerciseID != nil {
		q = q.Where("submission_exercise_id = ?", *exerciseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []submissionModel.SubmissionModel
	err := q.Order("submission_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, total, err
}

// ListByAssignment: rekap guru per assignment.
func (r *SubmissionRepository) ListByAssignment(assignmentID uuid.UUID, offset, limit int) ([]submissionModel.SubmissionModel, int64, error) {
	q := r.DB.Model(&submissionModel.SubmissionModel{}).
		Where("submission_assignment_id = ?", assignmentID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []submissionModel.SubmissionModel
	err := q.Order("submission_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, total, err
}
