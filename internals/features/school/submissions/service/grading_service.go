// file: internals/features/school/submissions/service/grading_service.go
package service

import (
	"fmt"
	"strings"

	exModel "kelaskode_backend/internals/features/school/exercises/model"
	submissionModel "kelaskode_backend/internals/features/school/submissions/model"
)

/* ==========================
   Grading Coordinator
========================== */

// Evaluator: potongan JudgeClient yang dipakai coordinator, supaya test
// bisa menyuntik judge palsu tanpa HTTP.
type Evaluator interface {
	Evaluate(sourceCode, language, stdin, expectedOutput string, timeLimitSec, memoryLimitMB, maxPolls int) (TestVerdict, error)
}

type GradingService struct {
	Judge Evaluator
}

func NewGradingService(judge Evaluator) *GradingService {
	return &GradingService{Judge: judge}
}

// Grade menjalankan seluruh test case BERURUTAN dengan kebijakan
// all-or-nothing: satu verdict non-accepted menghentikan sisanya, dan
// compilation error menggugurkan semua (kompilasi properti seluruh
// program, bukan satu test case). Error yang dikembalikan hanya untuk
// kegagalan transport ke judge; verdict jelek bukan error.
func (s *GradingService) Grade(sourceCode, language string, testCases []exModel.TestCaseModel, timeLimitSec, memoryLimitMB, maxPolls int) (FinalVerdict, error) {
	total := len(testCases)
	if total == 0 {
		return FinalVerdict{
			Status:  submissionModel.StatusWrongAnswer,
			Message: "exercise has no valid test cases",
		}, nil
	}

	final := FinalVerdict{Total: total, Cases: make([]CaseResult, 0, total)}

	for i, tc := range testCases {
		v, err := s.Judge.Evaluate(sourceCode, language, tc.TestCaseStdin, tc.TestCaseExpectedOutput, timeLimitSec, memoryLimitMB, maxPolls)
		if err != nil {
			return FinalVerdict{}, err
		}

		final.Cases = append(final.Cases, CaseResult{Ordinal: i + 1, TestVerdict: v})

		// Waktu/memori hasil akhir memakai test case PERTAMA saja.
		if i == 0 {
			final.TimeSec = v.TimeSec
			final.MemoryKB = v.MemoryKB
		}

		if v.Verdict == VerdictCompilationError {
			final.Status = submissionModel.StatusCompilationError
			final.Message = strings.TrimSpace(v.CompileOutput)
			if final.Message == "" {
				final.Message = "kompilasi gagal"
			}
			final.CompileOutput = v.CompileOutput
			return final, nil
		}

		if v.Verdict != VerdictAccepted {
			final.Status = v.Verdict
			final.Message = failureMessage(i+1, v)
			return final, nil
		}

		final.Passed++
	}

	final.Status = submissionModel.StatusAccepted
	final.Message = "all tests passed"
	return final, nil
}

// failureMessage menyebut nomor test case yang gagal dan, kalau ada,
// output aktual vs ekspektasi (keduanya di-trim trailing whitespace).
func failureMessage(ordinal int, v TestVerdict) string {
	msg := fmt.Sprintf("gagal di test case %d (%s)", ordinal, v.Verdict)
	if v.Message != "" {
		msg += ": " + v.Message
	}
	got := strings.TrimRight(v.Output, " \t\r\n")
	want := strings.TrimRight(v.ExpectedOutput, " \t\r\n")
	if got != "" || want != "" {
		msg += fmt.Sprintf("; output %q, diharapkan %q", got, want)
	}
	return msg
}
