// file: internals/features/attendance/sessions/dto/attendance_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/features/attendance/sessions/model"
)

func TestResolveRejectsBadInput(t *testing.T) {
	base := CreateAttendanceSessionRequest{
		Date:      "2026-08-28",
		StartTime: "09:00",
		EndTime:   "10:00",
	}

	if _, _, _, err := base.Resolve(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CreateAttendanceSessionRequest)
	}{
		{"bad date", func(r *CreateAttendanceSessionRequest) { r.Date = "28-08-2026" }},
		{"bad start", func(r *CreateAttendanceSessionRequest) { r.StartTime = "9am" }},
		{"bad end", func(r *CreateAttendanceSessionRequest) { r.EndTime = "25:00" }},
		{"inverted range", func(r *CreateAttendanceSessionRequest) { r.StartTime = "10:00"; r.EndTime = "09:00" }},
		{"empty range", func(r *CreateAttendanceSessionRequest) { r.EndTime = "09:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			if _, _, _, err := req.Resolve(); err == nil {
				t.Errorf("Resolve accepted %+v", req)
			}
		})
	}
}

func TestSummaryFrom(t *testing.T) {
	sessionID := uuid.New()
	records := []model.AttendanceRecordModel{
		{AttendanceRecordStatus: model.AttendancePresent},
		{AttendanceRecordStatus: model.AttendancePresent},
		{AttendanceRecordStatus: model.AttendanceAbsent},
		{AttendanceRecordStatus: model.AttendanceLate},
	}
	s := SummaryFrom(sessionID, records)
	if s.AttendanceSessionID != sessionID {
		t.Errorf("session id lost: %+v", s)
	}
	if s.Present != 2 || s.Absent != 1 || s.Late != 1 || s.Total != 4 {
		t.Errorf("counts wrong: %+v", s)
	}

	empty := SummaryFrom(sessionID, nil)
	if empty.Total != 0 || empty.Present != 0 {
		t.Errorf("empty summary wrong: %+v", empty)
	}
}

func TestValidAttendanceStatus(t *testing.T) {
	for _, ok := range []model.AttendanceStatus{model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLate} {
		if !model.ValidAttendanceStatus(ok) {
			t.Errorf("%q rejected", ok)
		}
	}
	if model.ValidAttendanceStatus("excused") {
		t.Error("unknown status accepted")
	}
}
