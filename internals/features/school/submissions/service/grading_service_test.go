// file: internals/features/school/submissions/service/grading_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exModel "kelaskode_backend/internals/features/school/exercises/model"
	submissionModel "kelaskode_backend/internals/features/school/submissions/model"
)

// fakeEvaluator mengembalikan verdict yang sudah disiapkan, urut per panggilan.
type fakeEvaluator struct {
	verdicts []TestVerdict
	err      error
	calls    int
}

func (f *fakeEvaluator) Evaluate(_, _, _, expectedOutput string, _, _, _ int) (TestVerdict, error) {
	if f.err != nil {
		return TestVerdict{}, f.err
	}
	v := f.verdicts[f.calls]
	if v.ExpectedOutput == "" {
		v.ExpectedOutput = expectedOutput
	}
	f.calls++
	return v, nil
}

func makeCases(n int) []exModel.TestCaseModel {
	out := make([]exModel.TestCaseModel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, exModel.TestCaseModel{
			TestCaseOrdinal:        i + 1,
			TestCaseStdin:          "in",
			TestCaseExpectedOutput: "out",
		})
	}
	return out
}

func TestGrade_EmptyTestCases(t *testing.T) {
	fake := &fakeEvaluator{}
	s := NewGradingService(fake)

	final, err := s.Grade("code", "python", nil, 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, submissionModel.StatusWrongAnswer, final.Status)
	assert.Equal(t, "exercise has no valid test cases", final.Message)
	assert.Zero(t, fake.calls, "judge tidak boleh dipanggil tanpa test case")
}

func TestGrade_AllAccepted(t *testing.T) {
	fake := &fakeEvaluator{verdicts: []TestVerdict{
		{Verdict: VerdictAccepted, TimeSec: "0.01", MemoryKB: 3200},
		{Verdict: VerdictAccepted, TimeSec: "0.50", MemoryKB: 9000},
		{Verdict: VerdictAccepted},
	}}
	s := NewGradingService(fake)

	final, err := s.Grade("code", "python", makeCases(3), 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, submissionModel.StatusAccepted, final.Status)
	assert.Equal(t, "all tests passed", final.Message)
	assert.Equal(t, 3, final.Passed)
	assert.Equal(t, 3, final.Total)
	assert.Len(t, final.Cases, 3)
	// Waktu/memori ikut test case pertama, bukan yang paling lambat.
	assert.Equal(t, "0.01", final.TimeSec)
	assert.Equal(t, 3200, final.MemoryKB)
}

func TestGrade_StopsAtFirstWrongAnswer(t *testing.T) {
	fake := &fakeEvaluator{verdicts: []TestVerdict{
		{Verdict: VerdictAccepted},
		{Verdict: VerdictWrongAnswer, Output: "5\n", ExpectedOutput: "6\n"},
		{Verdict: VerdictAccepted},
	}}
	s := NewGradingService(fake)

	final, err := s.Grade("code", "python", makeCases(3), 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, submissionModel.StatusWrongAnswer, final.Status)
	assert.Equal(t, 1, final.Passed)
	assert.Equal(t, 3, final.Total)
	assert.Equal(t, 2, fake.calls, "test case 3 tidak boleh dipanggil")
	assert.Contains(t, final.Message, "test case 2")
	assert.Contains(t, final.Message, `"5"`)
	assert.Contains(t, final.Message, `"6"`)
}

func TestGrade_CompilationErrorShortCircuits(t *testing.T) {
	fake := &fakeEvaluator{verdicts: []TestVerdict{
		{Verdict: VerdictCompilationError, CompileOutput: "main.c:3: error: expected ';'"},
	}}
	s := NewGradingService(fake)

	final, err := s.Grade("code", "c", makeCases(3), 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, submissionModel.StatusCompilationError, final.Status)
	assert.Equal(t, "main.c:3: error: expected ';'", final.Message)
	assert.Equal(t, 1, fake.calls, "case 2 dan 3 tidak pernah dijalankan")
	assert.Zero(t, final.Passed)
}

func TestGrade_TransportErrorPropagates(t *testing.T) {
	fake := &fakeEvaluator{err: errors.New("judge submit: connection refused")}
	s := NewGradingService(fake)

	_, err := s.Grade("code", "python", makeCases(2), 2, 128, 30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGrade_AllOrNothing(t *testing.T) {
	tests := []struct {
		name     string
		verdicts []TestVerdict
		want     string
		passed   int
	}{
		{
			name: "TLE di case terakhir",
			verdicts: []TestVerdict{
				{Verdict: VerdictAccepted},
				{Verdict: VerdictAccepted},
				{Verdict: VerdictTimeLimitExceeded},
			},
			want:   submissionModel.StatusTimeLimitExceeded,
			passed: 2,
		},
		{
			name: "runtime error di case pertama",
			verdicts: []TestVerdict{
				{Verdict: VerdictRuntimeError, Stderr: "segfault"},
			},
			want:   submissionModel.StatusRuntimeError,
			passed: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGradingService(&fakeEvaluator{verdicts: tt.verdicts})
			final, err := s.Grade("code", "python", makeCases(3), 2, 128, 30)

			require.NoError(t, err)
			assert.Equal(t, tt.want, final.Status)
			assert.Equal(t, tt.passed, final.Passed)
			// passed == total hanya boleh terjadi saat accepted
			assert.NotEqual(t, final.Passed, final.Total)
		})
	}
}
