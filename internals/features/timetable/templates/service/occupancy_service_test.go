// file: internals/features/timetable/templates/service/occupancy_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/features/timetable/templates/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
)

func weekWithFaculty(t *testing.T, day schedule.Weekday, slotIdx int, facultyID uuid.UUID) []schedule.DaySchedule {
	t.Helper()
	week, err := schedule.BuildWeek(schedule.DefaultBellParams())
	if err != nil {
		t.Fatalf("BuildWeek: %v", err)
	}
	if err := schedule.Assign(week, schedule.AssignToken{
		Day: day, SlotIndex: slotIdx, FacultyID: &facultyID,
	}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	return week
}

func firstClassSlot(t *testing.T) (int, schedule.TimeSlot) {
	t.Helper()
	slots, err := schedule.GenerateSlots(schedule.DefaultBellParams())
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	for i, s := range slots {
		if s.Kind == schedule.KindClass {
			return i, s
		}
	}
	t.Fatal("no class slot")
	return 0, schedule.TimeSlot{}
}

func TestFacultyOccupiedExactRangeOnly(t *testing.T) {
	facultyID := uuid.New()
	idx, slot := firstClassSlot(t)

	existing := TemplateSnapshot{
		ID:          uuid.New(),
		Year:        model.YearSecond,
		Semester:    4,
		Division:    "B",
		ClassroomID: uuid.New(),
		Days:        weekWithFaculty(t, schedule.Monday, idx, facultyID),
	}
	snapshot := []TemplateSnapshot{existing}

	ok, match := FacultyOccupied(snapshot, uuid.Nil, facultyID, schedule.Monday, slot.Start, slot.End)
	if !ok {
		t.Fatal("identical day+range not reported as occupied")
	}
	if match == nil || match.ID != existing.ID {
		t.Fatalf("wrong conflicting template: %+v", match)
	}

	// same day, different range: free
	if ok, _ := FacultyOccupied(snapshot, uuid.Nil, facultyID, schedule.Monday, slot.Start.Add(60), slot.End.Add(60)); ok {
		t.Error("different time range reported as occupied")
	}
	// overlapping but not identical range: free, only exact equality counts
	if ok, _ := FacultyOccupied(snapshot, uuid.Nil, facultyID, schedule.Monday, slot.Start, slot.End.Add(15)); ok {
		t.Error("non-identical overlapping range reported as occupied")
	}
	// same range, other day: free
	if ok, _ := FacultyOccupied(snapshot, uuid.Nil, facultyID, schedule.Tuesday, slot.Start, slot.End); ok {
		t.Error("other day reported as occupied")
	}
	// other faculty member: free
	if ok, _ := FacultyOccupied(snapshot, uuid.Nil, uuid.New(), schedule.Monday, slot.Start, slot.End); ok {
		t.Error("unrelated faculty reported as occupied")
	}
	// editing the conflicting template itself: excluded from the check
	if ok, _ := FacultyOccupied(snapshot, existing.ID, facultyID, schedule.Monday, slot.Start, slot.End); ok {
		t.Error("template under edit counted against itself")
	}
}

func TestClassroomOccupied(t *testing.T) {
	room := uuid.New()
	existing := TemplateSnapshot{
		ID:          uuid.New(),
		Year:        model.YearFirst,
		Semester:    1,
		Division:    "A",
		ClassroomID: room,
	}
	snapshot := []TemplateSnapshot{existing}

	ok, match := ClassroomOccupied(snapshot, uuid.Nil, room)
	if !ok || match == nil || match.ID != existing.ID {
		t.Fatalf("bound classroom not reported: ok=%v match=%+v", ok, match)
	}
	if ok, _ := ClassroomOccupied(snapshot, uuid.Nil, uuid.New()); ok {
		t.Error("free classroom reported as occupied")
	}
	if ok, _ := ClassroomOccupied(snapshot, existing.ID, room); ok {
		t.Error("template under edit counted against itself")
	}
}

func TestClassTeacherElsewhere(t *testing.T) {
	teacher := uuid.New()
	existing := TemplateSnapshot{
		ID:             uuid.New(),
		Year:           model.YearThird,
		Semester:       5,
		Division:       "C",
		ClassroomID:    uuid.New(),
		ClassTeacherID: &teacher,
	}
	snapshot := []TemplateSnapshot{existing}

	if ok, _ := ClassTeacherElsewhere(snapshot, uuid.Nil, teacher); !ok {
		t.Error("assigned class teacher not reported")
	}
	if ok, _ := ClassTeacherElsewhere(snapshot, uuid.Nil, uuid.New()); ok {
		t.Error("free faculty reported as class teacher elsewhere")
	}
	if ok, _ := ClassTeacherElsewhere(snapshot, existing.ID, teacher); ok {
		t.Error("template under edit counted against itself")
	}

	// nil class teacher must never match
	none := TemplateSnapshot{ID: uuid.New(), ClassroomID: uuid.New()}
	if ok, _ := ClassTeacherElsewhere([]TemplateSnapshot{none}, uuid.Nil, teacher); ok {
		t.Error("nil class teacher matched")
	}
}

func TestFindDuplicate(t *testing.T) {
	existing := TemplateSnapshot{
		ID:       uuid.New(),
		Year:     model.YearSecond,
		Semester: 4,
		Division: "B",
	}
	snapshot := []TemplateSnapshot{existing}

	if got := FindDuplicate(snapshot, uuid.Nil, model.YearSecond, 4, "b"); got == nil || got.ID != existing.ID {
		t.Errorf("case-insensitive duplicate not found: %+v", got)
	}
	if got := FindDuplicate(snapshot, uuid.Nil, model.YearSecond, 3, "B"); got != nil {
		t.Errorf("different semester flagged as duplicate: %+v", got)
	}
	if got := FindDuplicate(snapshot, uuid.Nil, model.YearFirst, 4, "B"); got != nil {
		t.Errorf("different year flagged as duplicate: %+v", got)
	}
	if got := FindDuplicate(snapshot, existing.ID, model.YearSecond, 4, "B"); got != nil {
		t.Errorf("template under edit flagged as its own duplicate: %+v", got)
	}
}

func TestScopeLabel(t *testing.T) {
	snap := TemplateSnapshot{Year: model.YearSecond, Semester: 4, Division: "B"}
	if got := snap.ScopeLabel(); got != "Second Year, Sem 4, Div B" {
		t.Errorf("ScopeLabel = %q", got)
	}
}

func TestFacultyGridConflict(t *testing.T) {
	facultyID := uuid.New()
	idx, slot := firstClassSlot(t)

	existing := TemplateSnapshot{
		ID:          uuid.New(),
		Year:        model.YearFirst,
		Semester:    2,
		Division:    "A",
		ClassroomID: uuid.New(),
		Days:        weekWithFaculty(t, schedule.Wednesday, idx, facultyID),
	}
	snapshot := []TemplateSnapshot{existing}

	// grid that books the same faculty at the same day+range
	week := weekWithFaculty(t, schedule.Wednesday, idx, facultyID)
	got := FacultyGridConflict(snapshot, uuid.Nil, week)
	if got == nil {
		t.Fatal("double booking not detected at save time")
	}
	if got.Day != schedule.Wednesday || got.Slot != slot || got.Faculty != facultyID {
		t.Errorf("wrong conflict cell: %+v", got)
	}
	if got.Existing.ID != existing.ID {
		t.Errorf("wrong conflicting template: %+v", got.Existing)
	}

	// same faculty on a different day: clean
	clean := weekWithFaculty(t, schedule.Thursday, idx, facultyID)
	if got := FacultyGridConflict(snapshot, uuid.Nil, clean); got != nil {
		t.Errorf("clean grid flagged: %+v", got)
	}

	// editing the conflicting template itself: clean
	if got := FacultyGridConflict(snapshot, existing.ID, week); got != nil {
		t.Errorf("template under edit flagged against itself: %+v", got)
	}
}
