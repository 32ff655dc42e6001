// file: internals/features/school/submissions/service/code_guard.go
package service

import (
	"strings"

	"kelaskode_backend/internals/constants"
)

/* ==========================
   Guard kode sebelum menyentuh judge
========================== */

const minCodeLength = 10

// ValidateCode menolak kode degenerate SEBELUM ada panggilan eksternal:
// terlalu pendek, atau identik dengan template placeholder bahasanya.
// Return: pesan penolakan ("" kalau lolos).
func ValidateCode(code, language string) string {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) < minCodeLength {
		return "Kode terlalu pendek untuk dinilai"
	}
	if tpl, ok := constants.LanguageTemplates[strings.ToLower(language)]; ok {
		if trimmed == strings.TrimSpace(tpl) {
			return "Kode masih sama dengan template, kerjakan dulu solusinya"
		}
	}
	return ""
}

// CheckLanguageShape: heuristik pola, best-effort — bukan compiler.
// Hanya menolak kalau bentuk leksikal kode JELAS bertentangan dengan
// bahasa yang dideklarasikan; snippet ambigu diloloskan biar judge yang
// memutuskan. Return: pesan penolakan ("" kalau lolos).
func CheckLanguageShape(code, language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))

	hasInclude := strings.Contains(code, "#include")
	hasPublicClass := strings.Contains(code, "public class") || strings.Contains(code, "public static void main")
	hasPyDef := strings.Contains(code, "def ") && strings.Contains(code, ":")

	switch lang {
	case constants.LangPython:
		if hasInclude || hasPublicClass {
			return "Kode terlihat bukan Python, periksa bahasa yang dipilih"
		}
	case constants.LangJavascript:
		if hasInclude || hasPublicClass {
			return "Kode terlihat bukan JavaScript, periksa bahasa yang dipilih"
		}
	case constants.LangC, constants.LangCpp:
		if hasPyDef && !hasInclude {
			return "Kode terlihat bukan C/C++, periksa bahasa yang dipilih"
		}
	case constants.LangJava:
		if hasInclude {
			return "Kode terlihat bukan Java, periksa bahasa yang dipilih"
		}
	}
	return ""
}
