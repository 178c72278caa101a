// file: internals/features/timetable/templates/dto/wire_test.go
package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/features/timetable/templates/schedule"
)

func TestEncodeWeekWireShape(t *testing.T) {
	week, err := schedule.BuildWeek(schedule.DefaultBellParams())
	if err != nil {
		t.Fatalf("BuildWeek: %v", err)
	}
	code := "CS101"
	typ := schedule.SubjectCore
	fid := uuid.New()
	if err := schedule.Assign(week, schedule.AssignToken{
		Day: schedule.Monday, SlotIndex: 0,
		SubjectCode: &code, SubjectType: &typ, FacultyID: &fid,
	}); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	raw, err := EncodeWeek(week)
	if err != nil {
		t.Fatalf("EncodeWeek: %v", err)
	}

	var days []WireDay
	if err := json.Unmarshal(raw, &days); err != nil {
		t.Fatalf("unmarshal wire grid: %v", err)
	}
	if len(days) != 6 || days[0].Day != "Monday" {
		t.Fatalf("wire grid shape off: %d days, first=%q", len(days), days[0].Day)
	}

	first := days[0].Slots[0]
	if first.Time != "09:00 - 10:00" || first.StartTime != "09:00" || first.EndTime != "10:00" {
		t.Errorf("slot times wrong: %+v", first)
	}
	if first.Kind != "class" || first.Type != "Core" || first.SubjectCode != "CS101" {
		t.Errorf("slot tags wrong: %+v", first)
	}
	if first.FacultyID == nil || *first.FacultyID != fid.String() {
		t.Errorf("facultyId wrong: %+v", first.FacultyID)
	}

	// a break row stays empty
	for _, ws := range days[0].Slots {
		if ws.Kind == "interval" || ws.Kind == "lunch" {
			if ws.SubjectCode != "" || ws.FacultyID != nil {
				t.Errorf("break slot carries assignments: %+v", ws)
			}
		}
	}
}

func TestWeekRoundTrip(t *testing.T) {
	week, err := schedule.BuildWeek(schedule.DefaultBellParams())
	if err != nil {
		t.Fatalf("BuildWeek: %v", err)
	}
	code := "PHY201"
	typ := schedule.SubjectLab
	fid := uuid.New()
	if err := schedule.Assign(week, schedule.AssignToken{
		Day: schedule.Saturday, SlotIndex: 3,
		SubjectCode: &code, SubjectType: &typ, FacultyID: &fid,
	}); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	raw, err := EncodeWeek(week)
	if err != nil {
		t.Fatalf("EncodeWeek: %v", err)
	}
	got, err := DecodeWeek(raw)
	if err != nil {
		t.Fatalf("DecodeWeek: %v", err)
	}

	if len(got) != len(week) {
		t.Fatalf("round trip lost days: %d vs %d", len(got), len(week))
	}
	for i := range week {
		if got[i].Day != week[i].Day || len(got[i].Slots) != len(week[i].Slots) {
			t.Fatalf("day %d shape changed", i)
		}
		for j := range week[i].Slots {
			a, b := week[i].Slots[j], got[i].Slots[j]
			if a.Slot != b.Slot || a.SubjectCode != b.SubjectCode || a.SubjectType != b.SubjectType {
				t.Errorf("%s[%d] changed: %+v vs %+v", week[i].Day, j, a, b)
			}
			switch {
			case a.FacultyID == nil && b.FacultyID != nil,
				a.FacultyID != nil && b.FacultyID == nil:
				t.Errorf("%s[%d] faculty presence changed", week[i].Day, j)
			case a.FacultyID != nil && *a.FacultyID != *b.FacultyID:
				t.Errorf("%s[%d] faculty id changed", week[i].Day, j)
			}
		}
	}
}

func TestDecodeWeekRejectsBadGrids(t *testing.T) {
	if _, err := DecodeWeek([]byte(`[{"day":"Sunday","slots":[]}]`)); err == nil {
		t.Error("unknown day accepted")
	}
	if _, err := DecodeWeek([]byte(`[{"day":"Monday","slots":[{"startTime":"25:00","endTime":"10:00"}]}]`)); err == nil {
		t.Error("invalid start time accepted")
	}
	bad := `[{"day":"Monday","slots":[{"startTime":"09:00","endTime":"10:00","facultyId":"not-a-uuid"}]}]`
	if _, err := DecodeWeek([]byte(bad)); err == nil {
		t.Error("invalid faculty id accepted")
	}
	if got, err := DecodeWeek(nil); err != nil || got != nil {
		t.Errorf("empty grid should decode to nil, got %v, %v", got, err)
	}
}
