package constants

import "strings"

// Bahasa yang didukung + language_id milik judge (Judge0).
const (
	LangC          = "c"
	LangCpp        = "cpp"
	LangJava       = "java"
	LangPython     = "python"
	LangJavascript = "javascript"
)

var judgeLanguageIDs = map[string]int{
	LangC:          50, // GCC
	LangCpp:        54, // G++
	LangJava:       62, // OpenJDK
	LangPython:     71, // Python 3
	LangJavascript: 63, // Node.js
}

func IsSupportedLanguage(lang string) bool {
	_, ok := judgeLanguageIDs[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// JudgeLanguageID mengembalikan language_id judge; 0 kalau tidak dikenal.
func JudgeLanguageID(lang string) int {
	return judgeLanguageIDs[strings.ToLower(strings.TrimSpace(lang))]
}

// Placeholder template per bahasa — kode yang identik dengan template
// dianggap belum dikerjakan dan ditolak sebelum menyentuh judge.
var LanguageTemplates = map[string]string{
	LangC: `#include <stdio.h>

int main() {
    // tulis solusimu di sini
    return 0;
}
`,
	LangCpp: `#include <bits/stdc++.h>
using namespace std;

int main() {
    // tulis solusimu di sini
    return 0;
}
`,
	LangJava: `public class Main {
    public static void main(String[] args) {
        // tulis solusimu di sini
    }
}
`,
	LangPython: `# tulis solusimu di sini
`,
	LangJavascript: `// tulis solusimu di sini
`,
}
