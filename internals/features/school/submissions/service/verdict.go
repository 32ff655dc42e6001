// file: internals/features/school/submissions/service/verdict.go
package service

import (
	submissionModel "kelaskode_backend/internals/features/school/submissions/model"
)

// Verdict memakai konstanta status submission yang sama supaya hasil
// per test langsung bisa dipersist tanpa mapping ulang.
const (
	VerdictAccepted          = submissionModel.StatusAccepted
	VerdictWrongAnswer       = submissionModel.StatusWrongAnswer
	VerdictTimeLimitExceeded = submissionModel.StatusTimeLimitExceeded
	VerdictRuntimeError      = submissionModel.StatusRuntimeError
	VerdictCompilationError  = submissionModel.StatusCompilationError
)

// TestVerdict: hasil satu test case dari judge.
type TestVerdict struct {
	Verdict        string `json:"verdict"`
	TimeSec        string `json:"time_sec,omitempty"`
	MemoryKB       int    `json:"memory_kb,omitempty"`
	Output         string `json:"output,omitempty"`
	Stderr         string `json:"stderr,omitempty"`
	CompileOutput  string `json:"compile_output,omitempty"`
	ExpectedOutput string `json:"expected_output,omitempty"`
	Message        string `json:"message,omitempty"`
}

// CaseResult: TestVerdict + nomor urut, untuk array hasil di response/DB.
type CaseResult struct {
	Ordinal int `json:"ordinal"`
	TestVerdict
}

// FinalVerdict: agregasi seluruh test case (kebijakan all-or-nothing).
type FinalVerdict struct {
	Status        string
	Message       string
	Passed        int
	Total         int
	TimeSec       string
	MemoryKB      int
	CompileOutput string
	Cases         []CaseResult
}
