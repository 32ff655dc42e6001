// file: internals/features/school/submissions/service/judge_client.go
package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"kelaskode_backend/internals/configs"
	"kelaskode_backend/internals/constants"
)

/* ==========================
   Judge Client (Judge0)
========================== */

// JudgeClient menilai SATU (kode, test case) per panggilan: submit dulu
// untuk dapat token, lalu poll sampai status terminal atau attempt habis.
// Tidak tahu-menahu soal exercise maupun kebijakan agregasi.
type JudgeClient struct {
	cfg  configs.JudgeConfig
	http *http.Client

	// sleep bisa diganti di test supaya poll loop tidak menunggu beneran.
	sleep func(d time.Duration)
}

func NewJudgeClient(cfg configs.JudgeConfig) *JudgeClient {
	return &JudgeClient{
		cfg:   cfg,
		http:  &http.Client{Timeout: 15 * time.Second},
		sleep: time.Sleep,
	}
}

/* ==========================
   Wire types
========================== */

type judgeSubmitRequest struct {
	LanguageID     int    `json:"language_id"`
	SourceCode     string `json:"source_code"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
	CPUTimeLimit   int    `json:"cpu_time_limit"`
	MemoryLimit    int    `json:"memory_limit"` // KB
}

type judgeSubmitResponse struct {
	Token string `json:"token"`
}

type judgeResultResponse struct {
	Status struct {
		ID int `json:"id"`
	} `json:"status"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
}

// Status id Judge0: 1 in queue, 2 processing, 3 accepted, 4 wrong answer,
// 5 TLE, 6 compilation error, 7..15 macam-macam runtime error.
func (r *judgeResultResponse) isTerminal() bool {
	return r.Status.ID != 1 && r.Status.ID != 2
}

func translateStatus(id int) string {
	switch {
	case id == 3:
		return VerdictAccepted
	case id == 4:
		return VerdictWrongAnswer
	case id == 5:
		return VerdictTimeLimitExceeded
	case id == 6:
		return VerdictCompilationError
	case id >= 7 && id <= 15:
		return VerdictRuntimeError
	default:
		return VerdictWrongAnswer
	}
}

/* ==========================
   Evaluate
========================== */

// Evaluate menjalankan satu test case. Gagal submit (non-2xx / error
// jaringan) = transport error, bukan verdict. Poll habis tanpa status
// terminal = verdict time_limit_exceeded dengan pesan penjelasan, supaya
// caller tetap menerima hasil terminal.
func (jc *JudgeClient) Evaluate(sourceCode, language, stdin, expectedOutput string, timeLimitSec, memoryLimitMB, maxPolls int) (TestVerdict, error) {
	token, err := jc.submit(sourceCode, language, stdin, expectedOutput, timeLimitSec, memoryLimitMB)
	if err != nil {
		return TestVerdict{}, err
	}

	for attempt := 0; attempt < maxPolls; attempt++ {
		if attempt > 0 {
			jc.sleep(jc.cfg.PollInterval)
		}
		res, err := jc.fetchResult(token)
		if err != nil {
			return TestVerdict{}, err
		}
		if !res.isTerminal() {
			continue
		}

		v := TestVerdict{
			Verdict:        translateStatus(res.Status.ID),
			Output:         strVal(res.Stdout),
			Stderr:         strVal(res.Stderr),
			CompileOutput:  strVal(res.CompileOutput),
			TimeSec:        strVal(res.Time),
			ExpectedOutput: expectedOutput,
		}
		if res.Memory != nil {
			v.MemoryKB = *res.Memory
		}
		return v, nil
	}

	// Bound habis — jangan gagal total, murid tetap butuh hasil terminal.
	return TestVerdict{
		Verdict:        VerdictTimeLimitExceeded,
		Message:        "judge tidak selesai dalam batas polling",
		ExpectedOutput: expectedOutput,
	}, nil
}

func (jc *JudgeClient) submit(sourceCode, language, stdin, expectedOutput string, timeLimitSec, memoryLimitMB int) (string, error) {
	payload := judgeSubmitRequest{
		LanguageID:     constants.JudgeLanguageID(language),
		SourceCode:     sourceCode,
		Stdin:          stdin,
		ExpectedOutput: expectedOutput,
		CPUTimeLimit:   timeLimitSec,
		MemoryLimit:    memoryLimitMB * 1024,
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("judge submit: encode payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost,
		jc.cfg.BaseURL+"/submissions?base64_encoded=false&wait=false",
		bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("judge submit: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if jc.cfg.APIKey != "" {
		req.Header.Set("X-Auth-Token", jc.cfg.APIKey)
	}

	resp, err := jc.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("judge submit: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("judge submit: status %d: %s", resp.StatusCode, string(raw))
	}

	var out judgeSubmitResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("judge submit: decode response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("judge submit: response tanpa token")
	}
	return out.Token, nil
}

func (jc *JudgeClient) fetchResult(token string) (*judgeResultResponse, error) {
	req, err := http.NewRequest(http.MethodGet,
		jc.cfg.BaseURL+"/submissions/"+token+"?base64_encoded=false", nil)
	if err != nil {
		return nil, fmt.Errorf("judge poll: %w", err)
	}
	if jc.cfg.APIKey != "" {
		req.Header.Set("X-Auth-Token", jc.cfg.APIKey)
	}

	resp, err := jc.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge poll: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("judge poll: status %d: %s", resp.StatusCode, string(raw))
	}

	var out judgeResultResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("judge poll: decode response: %w", err)
	}
	return &out, nil
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
