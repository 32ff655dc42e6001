// file: internals/features/school/submissions/service/admission_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"kelaskode_backend/internals/constants"
	asgModel "kelaskode_backend/internals/features/school/assignments/model"
)

type fakeSessionChecker struct {
	active bool
	err    error
}

func (f *fakeSessionChecker) HasActiveSession(_ uuid.UUID) (bool, error) {
	return f.active, f.err
}

func examAssignment() *asgModel.AssignmentModel {
	return &asgModel.AssignmentModel{
		AssignmentKind:            asgModel.AssignmentKindExam,
		AssignmentEnabledStudents: pq.StringArray{},
		AssignmentAllowedIPs:      pq.StringArray{},
	}
}

func TestCheckAdmission_AllPass(t *testing.T) {
	s := NewAdmissionService(&fakeSessionChecker{active: true})

	res := s.CheckAdmission(uuid.New(), constants.RoleStudent, examAssignment(), "10.0.0.1")

	assert.True(t, res.Allowed())
	assert.Empty(t, res.Reason())
}

func TestCheckAdmission_Roster(t *testing.T) {
	studentA := uuid.New()
	studentB := uuid.New()
	studentC := uuid.New()

	asg := examAssignment()
	asg.AssignmentEnabledStudents = pq.StringArray{studentA.String(), studentB.String()}

	s := NewAdmissionService(&fakeSessionChecker{active: true})

	// Murid di roster lolos
	res := s.CheckAdmission(studentA, constants.RoleStudent, asg, "10.0.0.1")
	assert.True(t, res.RosterOk)

	// Murid di luar roster ditolak dengan alasan not_enabled
	res = s.CheckAdmission(studentC, constants.RoleStudent, asg, "10.0.0.1")
	assert.False(t, res.RosterOk)
	assert.False(t, res.Allowed())
	assert.Equal(t, ReasonNotEnabled, res.Reason())
}

func TestCheckAdmission_EmptyRosterAllowsEveryone(t *testing.T) {
	s := NewAdmissionService(&fakeSessionChecker{active: true})

	res := s.CheckAdmission(uuid.New(), constants.RoleStudent, examAssignment(), "10.0.0.1")

	assert.True(t, res.RosterOk)
}

func TestCheckAdmission_SessionInvalidated(t *testing.T) {
	s := NewAdmissionService(&fakeSessionChecker{active: false})

	res := s.CheckAdmission(uuid.New(), constants.RoleStudent, examAssignment(), "10.0.0.1")

	assert.False(t, res.SessionOk)
	assert.Equal(t, ReasonSessionInvalidated, res.Reason())
}

func TestCheckAdmission_NonSingleSessionRoleSkipsSessionCheck(t *testing.T) {
	// Teacher tidak tunduk kebijakan satu sesi; registry tidak relevan.
	s := NewAdmissionService(&fakeSessionChecker{active: false})

	res := s.CheckAdmission(uuid.New(), constants.RoleTeacher, examAssignment(), "10.0.0.1")

	assert.True(t, res.SessionOk)
}

func TestCheckAdmission_SessionCheckerErrorFailsClosed(t *testing.T) {
	s := NewAdmissionService(&fakeSessionChecker{active: true, err: errors.New("db down")})

	res := s.CheckAdmission(uuid.New(), constants.RoleStudent, examAssignment(), "10.0.0.1")

	assert.False(t, res.SessionOk)
}

func TestCheckAdmission_Network(t *testing.T) {
	s := NewAdmissionService(&fakeSessionChecker{active: true})

	tests := []struct {
		name       string
		requireIP  bool
		allowedIPs pq.StringArray
		observed   string
		wantOk     bool
		wantReason string
	}{
		{
			name:      "flag mati, bebas dari mana saja",
			requireIP: false,
			observed:  "203.0.113.9",
			wantOk:    true,
		},
		{
			name:       "IP dalam range CIDR lolos",
			requireIP:  true,
			allowedIPs: pq.StringArray{"192.168.1.0/24"},
			observed:   "192.168.1.50",
			wantOk:     true,
		},
		{
			name:       "IP di luar range ditolak",
			requireIP:  true,
			allowedIPs: pq.StringArray{"192.168.1.0/24"},
			observed:   "10.0.0.5",
			wantOk:     false,
			wantReason: ReasonIPNotAllowed,
		},
		{
			name:       "flag hidup + allow-list kosong = semua ditolak",
			requireIP:  true,
			allowedIPs: pq.StringArray{},
			observed:   "192.168.1.50",
			wantOk:     false,
			wantReason: ReasonIPNotAllowed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asg := examAssignment()
			asg.AssignmentRequireIP = tt.requireIP
			asg.AssignmentAllowedIPs = tt.allowedIPs

			res := s.CheckAdmission(uuid.New(), constants.RoleStudent, asg, tt.observed)

			assert.Equal(t, tt.wantOk, res.NetworkOk)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, res.Reason())
			}
		})
	}
}

func TestAdmissionResult_ReasonOrder(t *testing.T) {
	// Roster dicek duluan, lalu sesi, terakhir jaringan.
	r := AdmissionResult{RosterOk: false, SessionOk: false, NetworkOk: false}
	assert.Equal(t, ReasonNotEnabled, r.Reason())

	r.RosterOk = true
	assert.Equal(t, ReasonSessionInvalidated, r.Reason())

	r.SessionOk = true
	assert.Equal(t, ReasonIPNotAllowed, r.Reason())
}
