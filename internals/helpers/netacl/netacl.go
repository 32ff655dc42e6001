// file: internals/helpers/netacl/netacl.go
//
// Pencocokan alamat klien terhadap allow-list ujian (IP persis atau CIDR).
// Murni: tanpa I/O, tanpa side effect. Entry rusak dilewati, tidak pernah
// menggagalkan evaluasi entry lain.
package netacl

import (
	"strconv"
	"strings"
)

// IsAllowed: true kalau observed cocok dengan minimal satu entry allow-list.
// Entry bisa berupa alamat IPv4 persis ("10.0.0.5") atau range CIDR
// ("192.168.1.0/24", prefix 0..32). List kosong = tidak ada yang lolos.
func IsAllowed(observed string, allowList []string) bool {
	observed = strings.TrimSpace(observed)
	if observed == "" {
		return false
	}
	obsInt, obsOK := ipv4ToUint32(observed)

	for _, entry := range allowList {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		network, prefixStr, isRange := strings.Cut(entry, "/")
		if !isRange {
			// exact match: cukup kesamaan string (berlaku juga untuk IPv6)
			if entry == observed {
				return true
			}
			continue
		}

		// range match: butuh kedua sisi berupa IPv4 valid
		if !obsOK {
			continue
		}
		prefix, err := strconv.Atoi(prefixStr)
		if err != nil || prefix < 0 || prefix > 32 {
			continue
		}
		netInt, ok := ipv4ToUint32(strings.TrimSpace(network))
		if !ok {
			continue
		}
		mask := prefixMask(prefix)
		if netInt&mask == obsInt&mask {
			return true
		}
	}
	return false
}

// prefixMask: n bit teratas menyala. n=0 → 0 (match semua alamat).
func prefixMask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return ^uint32(0) << (32 - n)
}

// ipv4ToUint32 parse dotted-quad ke integer 32-bit. Menolak oktet
// di luar 0..255, oktet kosong, dan jumlah oktet selain 4.
func ipv4ToUint32(s string) (uint32, bool) {
	var out uint32
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return 0, false
		}
		out = out<<8 | uint32(n)
	}
	return out, true
}
