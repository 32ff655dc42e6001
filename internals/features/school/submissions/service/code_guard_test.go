// file: internals/features/school/submissions/service/code_guard_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kelaskode_backend/internals/constants"
)

func TestValidateCode_TooShort(t *testing.T) {
	assert.NotEmpty(t, ValidateCode("", "python"))
	assert.NotEmpty(t, ValidateCode("   \n\t  ", "python"))
	assert.NotEmpty(t, ValidateCode("x=1", "python"))
}

func TestValidateCode_TemplateRejected(t *testing.T) {
	for lang, tpl := range constants.LanguageTemplates {
		t.Run(lang, func(t *testing.T) {
			msg := ValidateCode(tpl, lang)
			if len(tpl) < minCodeLength {
				// template super pendek sudah kena cek panjang duluan
				assert.NotEmpty(t, msg)
				return
			}
			assert.NotEmpty(t, msg, "kode identik template harus ditolak")
		})
	}
}

func TestValidateCode_RealCodePasses(t *testing.T) {
	code := `#include <stdio.h>

int main() {
    int a, b;
    scanf("%d %d", &a, &b);
    printf("%d\n", a + b);
    return 0;
}
`
	assert.Empty(t, ValidateCode(code, "c"))
}

func TestCheckLanguageShape(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		rejected bool
	}{
		{
			name:     "include pada python ditolak",
			code:     "#include <stdio.h>\nint main(){return 0;}",
			language: "python",
			rejected: true,
		},
		{
			name:     "public class pada python ditolak",
			code:     "public class Main { public static void main(String[] a){} }",
			language: "python",
			rejected: true,
		},
		{
			name:     "include pada java ditolak",
			code:     "#include <iostream>\nint main(){}",
			language: "java",
			rejected: true,
		},
		{
			name:     "def pada c ditolak",
			code:     "def main():\n    print('hi')\n",
			language: "c",
			rejected: true,
		},
		{
			name:     "python asli lolos",
			code:     "a, b = map(int, input().split())\nprint(a + b)\n",
			language: "python",
			rejected: false,
		},
		{
			name:     "c asli lolos",
			code:     "#include <stdio.h>\nint main(){ puts(\"ok\"); }",
			language: "c",
			rejected: false,
		},
		{
			name:     "snippet ambigu diloloskan, biar judge yang memutuskan",
			code:     "print(1+1) // atau console.log?",
			language: "javascript",
			rejected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := CheckLanguageShape(tt.code, tt.language)
			if tt.rejected {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
