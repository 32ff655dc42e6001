// file: internals/features/school/submissions/service/judge_client_test.go
package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelaskode_backend/internals/configs"
)

func newTestClient(baseURL string) *JudgeClient {
	jc := NewJudgeClient(configs.JudgeConfig{
		BaseURL:       baseURL,
		PollInterval:  time.Second,
		MaxPollsGrade: 30,
		MaxPollsRun:   10,
	})
	jc.sleep = func(time.Duration) {} // test tidak menunggu beneran
	return jc
}

// fakeJudge: server Judge0 palsu. Setiap poll mengembalikan elemen
// results berikutnya; elemen terakhir diulang setelah habis.
type fakeJudge struct {
	submitStatus int
	lastSubmit   judgeSubmitRequest
	results      []string
	polls        int
}

func (f *fakeJudge) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/submissions", func(w http.ResponseWriter, r *http.Request) {
		_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&f.lastSubmit)
		if f.submitStatus != 0 {
			w.WriteHeader(f.submitStatus)
			fmt.Fprint(w, `{"error":"queue full"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"token":"tok-123"}`)
	})
	mux.HandleFunc("/submissions/tok-123", func(w http.ResponseWriter, _ *http.Request) {
		i := f.polls
		if i >= len(f.results) {
			i = len(f.results) - 1
		}
		f.polls++
		fmt.Fprint(w, f.results[i])
	})
	return mux
}

func TestEvaluate_Accepted(t *testing.T) {
	judge := &fakeJudge{results: []string{
		`{"status":{"id":1}}`,
		`{"status":{"id":2}}`,
		`{"status":{"id":3},"stdout":"3\n","time":"0.004","memory":3100}`,
	}}
	srv := httptest.NewServer(judge.handler())
	defer srv.Close()

	jc := newTestClient(srv.URL)
	v, err := jc.Evaluate("print(1+2)", "python", "", "3\n", 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, VerdictAccepted, v.Verdict)
	assert.Equal(t, "3\n", v.Output)
	assert.Equal(t, "0.004", v.TimeSec)
	assert.Equal(t, 3100, v.MemoryKB)
	assert.Equal(t, "3\n", v.ExpectedOutput)
	assert.Equal(t, 3, judge.polls, "berhenti tepat saat status terminal")
}

func TestEvaluate_SubmitPayload(t *testing.T) {
	judge := &fakeJudge{results: []string{`{"status":{"id":3}}`}}
	srv := httptest.NewServer(judge.handler())
	defer srv.Close()

	jc := newTestClient(srv.URL)
	_, err := jc.Evaluate("code", "python", "1 2", "3", 5, 256, 30)

	require.NoError(t, err)
	assert.Equal(t, 71, judge.lastSubmit.LanguageID)
	assert.Equal(t, "1 2", judge.lastSubmit.Stdin)
	assert.Equal(t, "3", judge.lastSubmit.ExpectedOutput)
	assert.Equal(t, 5, judge.lastSubmit.CPUTimeLimit)
	assert.Equal(t, 256*1024, judge.lastSubmit.MemoryLimit, "memory_limit Judge0 dalam KB")
}

func TestEvaluate_StatusTranslation(t *testing.T) {
	tests := []struct {
		statusID int
		want     string
	}{
		{3, VerdictAccepted},
		{4, VerdictWrongAnswer},
		{5, VerdictTimeLimitExceeded},
		{6, VerdictCompilationError},
		{7, VerdictRuntimeError},
		{11, VerdictRuntimeError},
		{15, VerdictRuntimeError},
		{99, VerdictWrongAnswer}, // kode tak dikenal default wrong_answer
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.statusID), func(t *testing.T) {
			judge := &fakeJudge{results: []string{
				fmt.Sprintf(`{"status":{"id":%d}}`, tt.statusID),
			}}
			srv := httptest.NewServer(judge.handler())
			defer srv.Close()

			v, err := newTestClient(srv.URL).Evaluate("code", "python", "", "", 2, 128, 30)

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Verdict)
		})
	}
}

func TestEvaluate_CompileOutputCarried(t *testing.T) {
	judge := &fakeJudge{results: []string{
		`{"status":{"id":6},"compile_output":"main.c:1: fatal error"}`,
	}}
	srv := httptest.NewServer(judge.handler())
	defer srv.Close()

	v, err := newTestClient(srv.URL).Evaluate("code", "c", "", "", 2, 128, 30)

	require.NoError(t, err)
	assert.Equal(t, VerdictCompilationError, v.Verdict)
	assert.Equal(t, "main.c:1: fatal error", v.CompileOutput)
}

func TestEvaluate_PollExhaustionYieldsTLEVerdict(t *testing.T) {
	// Judge tidak pernah terminal — caller tetap harus dapat hasil.
	judge := &fakeJudge{results: []string{`{"status":{"id":2}}`}}
	srv := httptest.NewServer(judge.handler())
	defer srv.Close()

	v, err := newTestClient(srv.URL).Evaluate("code", "python", "", "x", 2, 128, 5)

	require.NoError(t, err)
	assert.Equal(t, VerdictTimeLimitExceeded, v.Verdict)
	assert.NotEmpty(t, v.Message)
	assert.Equal(t, 5, judge.polls)
}

func TestEvaluate_SubmitFailureIsTransportError(t *testing.T) {
	judge := &fakeJudge{submitStatus: http.StatusServiceUnavailable}
	srv := httptest.NewServer(judge.handler())
	defer srv.Close()

	_, err := newTestClient(srv.URL).Evaluate("code", "python", "", "", 2, 128, 30)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "judge submit")
}

func TestEvaluate_NetworkErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // server langsung dimatikan

	_, err := newTestClient(srv.URL).Evaluate("code", "python", "", "", 2, 128, 30)

	require.Error(t, err)
}
