// file: internals/features/school/submissions/service/admission_service.go
package service

import (
	"log"

	"github.com/google/uuid"

	"kelaskode_backend/internals/constants"
	asgModel "kelaskode_backend/internals/features/school/assignments/model"
	"kelaskode_backend/internals/helpers/netacl"
)

/* ==========================
   Exam Admission Gate
========================== */

// Kode alasan penolakan, dikirim apa adanya ke UI.
const (
	ReasonNotEnabled         = "not_enabled"
	ReasonSessionInvalidated = "session_invalidated"
	ReasonIPNotAllowed       = "ip_not_allowed"
)

// ActiveSessionChecker: potongan kecil dari session repository yang
// dibutuhkan gate (cek "punya sesi hidup", bukan validasi token pemanggil).
type ActiveSessionChecker interface {
	HasActiveSession(userID uuid.UUID) (bool, error)
}

// AdmissionResult membawa tiga cek independen, bukan satu boolean,
// supaya caller bisa melaporkan cek MANA yang gagal.
type AdmissionResult struct {
	RosterOk  bool `json:"roster_ok"`
	SessionOk bool `json:"session_ok"`
	NetworkOk bool `json:"network_ok"`
}

func (r AdmissionResult) Allowed() bool {
	return r.RosterOk && r.SessionOk && r.NetworkOk
}

// Reason mengembalikan kode alasan kegagalan pertama (urutan: roster,
// sesi, jaringan). Kosong kalau lolos semua.
func (r AdmissionResult) Reason() string {
	switch {
	case !r.RosterOk:
		return ReasonNotEnabled
	case !r.SessionOk:
		return ReasonSessionInvalidated
	case !r.NetworkOk:
		return ReasonIPNotAllowed
	default:
		return ""
	}
}

// ReasonMessage: pesan manusiawi per kode alasan.
func ReasonMessage(reason string) string {
	switch reason {
	case ReasonNotEnabled:
		return "Kamu belum di-enable untuk mengikuti exam ini"
	case ReasonSessionInvalidated:
		return "Sesi kamu sudah tidak aktif (login dari perangkat lain?)"
	case ReasonIPNotAllowed:
		return "Exam ini hanya bisa diakses dari jaringan yang diizinkan"
	default:
		return "Akses exam ditolak"
	}
}

type AdmissionService struct {
	Sessions ActiveSessionChecker
}

func NewAdmissionService(sessions ActiveSessionChecker) *AdmissionService {
	return &AdmissionService{Sessions: sessions}
}

// CheckAdmission memutuskan boleh tidaknya murid submit ke exam SAAT INI.
// Hanya dipanggil untuk assignment kind=exam; kind lain lolos tanpa gate.
// Penolakan adalah return value normal, bukan error.
func (s *AdmissionService) CheckAdmission(userID uuid.UUID, userRole string, assignment *asgModel.AssignmentModel, observedIP string) AdmissionResult {
	res := AdmissionResult{RosterOk: true, SessionOk: true, NetworkOk: true}

	// 1. Roster: kosong artinya semua murid kelas boleh.
	if len(assignment.AssignmentEnabledStudents) > 0 && !assignment.IsStudentEnabled(userID) {
		res.RosterOk = false
	}

	// 2. Sesi: hanya role single-session yang dicek punya sesi hidup.
	if constants.IsSingleSessionRole(userRole) {
		active, err := s.Sessions.HasActiveSession(userID)
		if err != nil {
			// Fail-closed: kalau registry tidak bisa dibaca, jangan loloskan.
			log.Printf("[ERROR] gate exam: cek sesi user %s gagal: %v", userID, err)
			active = false
		}
		if !active {
			res.SessionOk = false
		}
	}

	// 3. Jaringan: flag false = bebas. Flag true + allow-list kosong =
	// semua ditolak (fail-closed).
	if assignment.AssignmentRequireIP {
		if !netacl.IsAllowed(observedIP, assignment.AssignmentAllowedIPs) {
			res.NetworkOk = false
		}
	}

	return res
}
