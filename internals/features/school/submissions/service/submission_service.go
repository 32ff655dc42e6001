// file: internals/features/school/submissions/service/submission_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bytedance/sonic"

	"kelaskode_backend/internals/configs"
	"kelaskode_backend/internals/constants"
	asgModel "kelaskode_backend/internals/features/school/assignments/model"
	exModel "kelaskode_backend/internals/features/school/exercises/model"
	submissionModel "kelaskode_backend/internals/features/school/submissions/model"
	"kelaskode_backend/internals/features/school/submissions/repository"
)

/* ==========================
   Submission Orchestrator
========================== */

// Kode alasan tambahan di luar gate (jendela waktu assignment).
const ReasonAssignmentClosed = "assignment_closed"

type SubmissionService struct {
	DB     *gorm.DB
	Repo   *repository.SubmissionRepository
	Grader *GradingService
	Gate   *AdmissionService
	Cfg    configs.JudgeConfig
}

func NewSubmissionService(db *gorm.DB, repo *repository.SubmissionRepository, grader *GradingService, gate *AdmissionService, cfg configs.JudgeConfig) *SubmissionService {
	return &SubmissionService{DB: db, Repo: repo, Grader: grader, Gate: gate, Cfg: cfg}
}

type SubmitInput struct {
	UserID       uuid.UUID
	UserRole     string
	ExerciseID   uuid.UUID
	AssignmentID *uuid.UUID
	Code         string
	Language     string
	ObservedIP   string
}

// SubmitOutcome: hasil orchestrasi + status HTTP yang hendak dikirim
// controller. Success hanya true kalau verdict akhirnya accepted.
type SubmitOutcome struct {
	HTTPStatus int
	Success    bool
	Message    string
	Reason     string
	Submission *submissionModel.SubmissionModel
}

// Submit menjalankan seluruh alur: guard kode → lookup exercise →
// gate exam (kalau perlu) → persist pending → grading → persist terminal.
func (s *SubmissionService) Submit(in SubmitInput) SubmitOutcome {
	// 1. Guard kode degenerate, sebelum ada panggilan eksternal apa pun.
	if !constants.IsSupportedLanguage(in.Language) {
		return SubmitOutcome{HTTPStatus: fiber.StatusBadRequest, Message: "Bahasa tidak didukung"}
	}
	if msg := ValidateCode(in.Code, in.Language); msg != "" {
		return SubmitOutcome{HTTPStatus: fiber.StatusBadRequest, Message: msg, Reason: "invalid_code"}
	}

	// 2. Heuristik bentuk bahasa, best-effort.
	if msg := CheckLanguageShape(in.Code, in.Language); msg != "" {
		return SubmitOutcome{HTTPStatus: fiber.StatusBadRequest, Message: msg, Reason: "invalid_code"}
	}

	// 3. Exercise harus ada dan aktif.
	var exercise exModel.ExerciseModel
	err := s.DB.First(&exercise, "exercise_id = ? AND exercise_is_active = TRUE", in.ExerciseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SubmitOutcome{HTTPStatus: fiber.StatusNotFound, Message: "Soal tidak ditemukan"}
	}
	if err != nil {
		return SubmitOutcome{HTTPStatus: fiber.StatusInternalServerError, Message: "Gagal mengambil soal"}
	}

	// 4. Gate exam. Penolakan = outcome normal, submission TIDAK dibuat
	// dan judge TIDAK dipanggil.
	if in.AssignmentID != nil {
		var assignment asgModel.AssignmentModel
		err := s.DB.First(&assignment, "assignment_id = ?", *in.AssignmentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmitOutcome{HTTPStatus: fiber.StatusNotFound, Message: "Assignment tidak ditemukan"}
		}
		if err != nil {
			return SubmitOutcome{HTTPStatus: fiber.StatusInternalServerError, Message: "Gagal mengambil assignment"}
		}
		if !assignment.IsOpenAt(time.Now().UTC()) {
			return SubmitOutcome{
				HTTPStatus: fiber.StatusForbidden,
				Message:    "Assignment sudah ditutup atau belum dibuka",
				Reason:     ReasonAssignmentClosed,
			}
		}
		if assignment.IsExam() {
			adm := s.Gate.CheckAdmission(in.UserID, in.UserRole, &assignment, in.ObservedIP)
			if !adm.Allowed() {
				reason := adm.Reason()
				return SubmitOutcome{
					HTTPStatus: fiber.StatusForbidden,
					Message:    ReasonMessage(reason),
					Reason:     reason,
				}
			}
		}
	}

	// 5. Test case urut ordinal.
	var testCases []exModel.TestCaseModel
	if err := s.DB.
		Where("test_case_exercise_id = ?", exercise.ExerciseID).
		Order("test_case_ordinal ASC").
		Find(&testCases).Error; err != nil {
		return SubmitOutcome{HTTPStatus: fiber.StatusInternalServerError, Message: "Gagal mengambil test case"}
	}

	// 6. Persist pending dulu, baru menilai.
	sub := submissionModel.SubmissionModel{
		SubmissionUserID:       in.UserID,
		SubmissionExerciseID:   exercise.ExerciseID,
		SubmissionAssignmentID: in.AssignmentID,
		SubmissionCode:         in.Code,
		SubmissionLanguage:     strings.ToLower(in.Language),
	}
	if err := s.Repo.CreatePending(&sub); err != nil {
		return SubmitOutcome{HTTPStatus: fiber.StatusInternalServerError, Message: "Gagal menyimpan submission"}
	}

	// 7. Grading. Transport error → submission ditandai runtime_error
	// dengan pesan errornya (terminal-tapi-degraded), caller dapat 500.
	final, err := s.Grader.Grade(in.Code, in.Language, testCases, exercise.ExerciseTimeLimitSeconds, exercise.ExerciseMemoryLimitMB, s.Cfg.MaxPollsGrade)
	if err != nil {
		log.Printf("[ERROR] grading submission %s gagal: %v", sub.SubmissionID, err)
		s.finalize(&sub, FinalVerdict{
			Status:  submissionModel.StatusRuntimeError,
			Message: "Gagal menghubungi judge: " + err.Error(),
			Total:   len(testCases),
		})
		return SubmitOutcome{
			HTTPStatus: fiber.StatusInternalServerError,
			Message:    "Penilaian gagal, coba submit ulang",
			Submission: &sub,
		}
	}

	// 8. Persist hasil terminal.
	s.finalize(&sub, final)

	return SubmitOutcome{
		HTTPStatus: fiber.StatusOK,
		Success:    final.Status == submissionModel.StatusAccepted,
		Message:    final.Message,
		Submission: &sub,
	}
}

// finalize menulis hasil agregasi ke baris submission dan menyalinnya ke
// struct in-memory supaya response tidak perlu re-fetch.
func (s *SubmissionService) finalize(sub *submissionModel.SubmissionModel, final FinalVerdict) {
	updates := map[string]interface{}{
		"submission_status":  final.Status,
		"submission_message": final.Message,
		"submission_passed":  final.Passed,
		"submission_total":   final.Total,
	}
	if final.TimeSec != "" {
		updates["submission_time_sec"] = final.TimeSec
	}
	if final.MemoryKB > 0 {
		updates["submission_memory_kb"] = final.MemoryKB
	}
	if final.CompileOutput != "" {
		updates["submission_compile_output"] = final.CompileOutput
	}
	if len(final.Cases) > 0 {
		if raw, err := sonic.Marshal(final.Cases); err == nil {
			updates["submission_test_results"] = datatypes.JSON(raw)
			sub.SubmissionTestResults = datatypes.JSON(raw)
		} else {
			log.Printf("[WARN] encode hasil per test submission %s gagal: %v", sub.SubmissionID, err)
		}
	}

	if err := s.Repo.Finalize(sub.SubmissionID, updates); err != nil {
		log.Printf("[ERROR] finalisasi submission %s gagal: %v", sub.SubmissionID, err)
	}

	sub.SubmissionStatus = final.Status
	sub.SubmissionMessage = final.Message
	sub.SubmissionPassed = final.Passed
	sub.SubmissionTotal = final.Total
	if final.TimeSec != "" {
		t := final.TimeSec
		sub.SubmissionTimeSec = &t
	}
	if final.MemoryKB > 0 {
		m := final.MemoryKB
		sub.SubmissionMemoryKB = &m
	}
	if final.CompileOutput != "" {
		co := final.CompileOutput
		sub.SubmissionCompileOutput = &co
	}
}

/* ==========================
   Test run (ad-hoc, tanpa persist)
========================== */

type TestRunInput struct {
	Code           string
	Language       string
	Stdin          string
	ExpectedOutput string
}

// TestRun menjalankan satu kasus coba-coba milik murid sendiri. Tidak
// ada submission yang dibuat, cap pollingnya lebih pendek.
func (s *SubmissionService) TestRun(in TestRunInput) (TestVerdict, SubmitOutcome) {
	if !constants.IsSupportedLanguage(in.Language) {
		return TestVerdict{}, SubmitOutcome{HTTPStatus: fiber.StatusBadRequest, Message: "Bahasa tidak didukung"}
	}
	if msg := ValidateCode(in.Code, in.Language); msg != "" {
		return TestVerdict{}, SubmitOutcome{HTTPStatus: fiber.StatusBadRequest, Message: msg, Reason: "invalid_code"}
	}

	v, err := s.Grader.Judge.Evaluate(in.Code, in.Language, in.Stdin, in.ExpectedOutput, 2, 128, s.Cfg.MaxPollsRun)
	if err != nil {
		log.Printf("[ERROR] test-run gagal: %v", err)
		return TestVerdict{}, SubmitOutcome{HTTPStatus: fiber.StatusInternalServerError, Message: "Gagal menghubungi judge"}
	}
	return v, SubmitOutcome{HTTPStatus: fiber.StatusOK, Success: v.Verdict == VerdictAccepted, Message: "ok"}
}
