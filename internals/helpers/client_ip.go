// file: internals/helpers/client_ip.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP mengambil alamat klien best-effort: header proxy dulu,
// lalu alamat koneksi, terakhir fallback loopback (konteks lokal/dev).
// Subsistem gate ujian tidak membaca metadata transport sendiri —
// alamat SELALU dioper dari sini.
func ClientIP(c *fiber.Ctx) string {
	if xff := strings.TrimSpace(c.Get(fiber.HeaderXForwardedFor)); xff != "" {
		// ambil hop pertama (alamat klien asli)
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		if ip := strings.TrimSpace(xff); ip != "" {
			return ip
		}
	}
	if rip := strings.TrimSpace(c.Get("X-Real-Ip")); rip != "" {
		return rip
	}
	if ip := strings.TrimSpace(c.IP()); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
