// file: internals/features/timetable/templates/schedule/grid_test.go
package schedule

import (
	"testing"

	"github.com/google/uuid"
)

func buildTestWeek(t *testing.T) []DaySchedule {
	t.Helper()
	week, err := BuildWeek(DefaultBellParams())
	if err != nil {
		t.Fatalf("BuildWeek: %v", err)
	}
	return week
}

func classIndex(t *testing.T, week []DaySchedule) int {
	t.Helper()
	for i, s := range week[0].Slots {
		if s.Slot.Kind == KindClass {
			return i
		}
	}
	t.Fatal("no class slot in generated week")
	return -1
}

func breakIndex(t *testing.T, week []DaySchedule) int {
	t.Helper()
	for i, s := range week[0].Slots {
		if s.Slot.Kind != KindClass {
			return i
		}
	}
	t.Fatal("no break slot in generated week")
	return -1
}

func TestBuildWeekShape(t *testing.T) {
	week := buildTestWeek(t)
	if len(week) != len(Weekdays) {
		t.Fatalf("got %d days, want %d", len(week), len(Weekdays))
	}
	for i, d := range week {
		if d.Day != Weekdays[i] {
			t.Errorf("day %d = %s, want %s", i, d.Day, Weekdays[i])
		}
		for j, s := range d.Slots {
			if s.SubjectCode != "" || s.FacultyID != nil {
				t.Errorf("fresh grid cell %s[%d] is not empty: %+v", d.Day, j, s)
			}
		}
	}
}

func TestAssignSubjectOnly(t *testing.T) {
	week := buildTestWeek(t)
	idx := classIndex(t, week)

	code := "CS101"
	typ := SubjectCore
	err := Assign(week, AssignToken{Day: Monday, SlotIndex: idx, SubjectCode: &code, SubjectType: &typ})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	cell := week[0].Slots[idx]
	if cell.SubjectCode != "CS101" || cell.SubjectType != SubjectCore {
		t.Errorf("subject not applied: %+v", cell)
	}
	if cell.FacultyID != nil {
		t.Errorf("faculty was touched by a subject-only token: %+v", cell)
	}

	// other days stay untouched
	if week[1].Slots[idx].SubjectCode != "" {
		t.Errorf("assignment leaked to %s", week[1].Day)
	}
}

func TestAssignFacultyKeepsSubject(t *testing.T) {
	week := buildTestWeek(t)
	idx := classIndex(t, week)

	code := "PHY201"
	typ := SubjectLab
	if err := Assign(week, AssignToken{Day: Tuesday, SlotIndex: idx, SubjectCode: &code, SubjectType: &typ}); err != nil {
		t.Fatalf("Assign subject: %v", err)
	}

	fid := uuid.New()
	if err := Assign(week, AssignToken{Day: Tuesday, SlotIndex: idx, FacultyID: &fid}); err != nil {
		t.Fatalf("Assign faculty: %v", err)
	}

	cell := week[1].Slots[idx]
	if cell.SubjectCode != "PHY201" || cell.SubjectType != SubjectLab {
		t.Errorf("faculty-only token clobbered the subject: %+v", cell)
	}
	if cell.FacultyID == nil || *cell.FacultyID != fid {
		t.Errorf("faculty not applied: %+v", cell)
	}
}

func TestAssignRejectsBreakSlots(t *testing.T) {
	week := buildTestWeek(t)
	idx := breakIndex(t, week)

	code := "CS101"
	if err := Assign(week, AssignToken{Day: Monday, SlotIndex: idx, SubjectCode: &code}); err == nil {
		t.Error("Assign accepted a break slot")
	}
	if err := Unassign(week, Monday, idx, FieldSubject); err == nil {
		t.Error("Unassign accepted a break slot")
	}
}

func TestAssignRejectsBadTargets(t *testing.T) {
	week := buildTestWeek(t)
	code := "CS101"

	if err := Assign(week, AssignToken{Day: "Sunday", SlotIndex: 0, SubjectCode: &code}); err == nil {
		t.Error("Assign accepted an unknown day")
	}
	if err := Assign(week, AssignToken{Day: Monday, SlotIndex: 99, SubjectCode: &code}); err == nil {
		t.Error("Assign accepted an out-of-range slot index")
	}
	if err := Assign(week, AssignToken{Day: Monday, SlotIndex: classIndex(t, week)}); err == nil {
		t.Error("Assign accepted an empty token")
	}
}

func TestUnassignClearsExactlyOneField(t *testing.T) {
	week := buildTestWeek(t)
	idx := classIndex(t, week)

	code := "CS101"
	typ := SubjectElective
	fid := uuid.New()
	if err := Assign(week, AssignToken{Day: Friday, SlotIndex: idx, SubjectCode: &code, SubjectType: &typ, FacultyID: &fid}); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	if err := Unassign(week, Friday, idx, FieldSubject); err != nil {
		t.Fatalf("Unassign subject: %v", err)
	}
	cell := week[4].Slots[idx]
	if cell.SubjectCode != "" || cell.SubjectType != "" {
		t.Errorf("subject not cleared: %+v", cell)
	}
	if cell.FacultyID == nil {
		t.Errorf("clearing the subject also cleared the faculty: %+v", cell)
	}

	if err := Unassign(week, Friday, idx, FieldFaculty); err != nil {
		t.Fatalf("Unassign faculty: %v", err)
	}
	if week[4].Slots[idx].FacultyID != nil {
		t.Errorf("faculty not cleared: %+v", week[4].Slots[idx])
	}

	if err := Unassign(week, Friday, idx, "room"); err == nil {
		t.Error("Unassign accepted an unknown field")
	}
}
