// file: internals/features/timetable/templates/controller/grid_shape_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"

	"campushub_backend/internals/features/timetable/templates/schedule"
)

func TestValidateGridShapeAcceptsGeneratedWeek(t *testing.T) {
	params := schedule.DefaultBellParams()
	week, err := schedule.BuildWeek(params)
	if err != nil {
		t.Fatalf("BuildWeek: %v", err)
	}
	if err := validateGridShape(params, week); err != nil {
		t.Fatalf("generated week rejected: %v", err)
	}

	// assignments on class slots stay valid
	code := "CS101"
	typ := schedule.SubjectCore
	if err := schedule.Assign(week, schedule.AssignToken{
		Day: schedule.Monday, SlotIndex: 0, SubjectCode: &code, SubjectType: &typ,
	}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := validateGridShape(params, week); err != nil {
		t.Fatalf("assigned week rejected: %v", err)
	}
}

func TestValidateGridShapeRejectsMismatches(t *testing.T) {
	params := schedule.DefaultBellParams()

	fresh := func() []schedule.DaySchedule {
		week, err := schedule.BuildWeek(params)
		if err != nil {
			t.Fatalf("BuildWeek: %v", err)
		}
		return week
	}

	// missing day
	week := fresh()
	if err := validateGridShape(params, week[:5]); err == nil {
		t.Error("five-day grid accepted")
	}

	// duplicate day
	week = fresh()
	week[1].Day = schedule.Monday
	if err := validateGridShape(params, week); err == nil {
		t.Error("duplicate day accepted")
	}

	// dropped slot
	week = fresh()
	week[0].Slots = week[0].Slots[1:]
	if err := validateGridShape(params, week); err == nil {
		t.Error("short day accepted")
	}

	// shifted slot boundary
	week = fresh()
	week[2].Slots[0].Slot.End = week[2].Slots[0].Slot.End.Add(5)
	if err := validateGridShape(params, week); err == nil {
		t.Error("off-bell slot accepted")
	}

	// assignment smuggled onto a break
	week = fresh()
	for i := range week[0].Slots {
		if week[0].Slots[i].Slot.Kind != schedule.KindClass {
			id := uuid.New()
			week[0].Slots[i].FacultyID = &id
			break
		}
	}
	if err := validateGridShape(params, week); err == nil {
		t.Error("assignment on a break slot accepted")
	}
}
