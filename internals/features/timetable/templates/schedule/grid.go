// file: internals/features/timetable/templates/schedule/grid.go
package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

/* =======================================================
   Weekday — teaching days only, Sunday excluded.
   ======================================================= */

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func ValidWeekday(d Weekday) bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

/* =======================================================
   Subject pedagogical type — orthogonal to SlotKind.
   Only meaningful on Class slots that hold a subject.
   ======================================================= */

type SubjectType string

const (
	SubjectCore     SubjectType = "Core"
	SubjectLab      SubjectType = "Lab"
	SubjectElective SubjectType = "Elective"
)

/* =======================================================
   Grid state — (day × slot) → {subject, faculty}
   ======================================================= */

// SlotAssignment is one cell: a bell slot plus whatever occupies it.
// Subject and faculty are independent; either may be set without the other.
type SlotAssignment struct {
	Slot        TimeSlot
	SubjectCode string // empty = no subject assigned
	SubjectType SubjectType
	FacultyID   *uuid.UUID // nil = no faculty assigned
}

type DaySchedule struct {
	Day   Weekday
	Slots []SlotAssignment
}

// BuildWeek generates the empty Mon..Sat grid for the given bell schedule.
func BuildWeek(p BellParams) ([]DaySchedule, error) {
	slots, err := GenerateSlots(p)
	if err != nil {
		return nil, err
	}
	week := make([]DaySchedule, 0, len(Weekdays))
	for _, d := range Weekdays {
		assignments := make([]SlotAssignment, len(slots))
		for i, s := range slots {
			assignments[i] = SlotAssignment{Slot: s}
		}
		week = append(week, DaySchedule{Day: d, Slots: assignments})
	}
	return week, nil
}

/* =======================================================
   Assignment commands — decoupled from whatever input
   mechanism (drag, keyboard, tap) triggered them.
   ======================================================= */

type AssignField string

const (
	FieldSubject AssignField = "subject"
	FieldFaculty AssignField = "faculty"
)

// AssignToken places a subject and/or a faculty member onto one grid cell.
type AssignToken struct {
	Day         Weekday
	SlotIndex   int
	SubjectCode *string
	SubjectType *SubjectType
	FacultyID   *uuid.UUID
}

func findCell(week []DaySchedule, day Weekday, idx int) (*SlotAssignment, error) {
	if !ValidWeekday(day) {
		return nil, fmt.Errorf("unknown day %q", day)
	}
	for i := range week {
		if week[i].Day == day {
			if idx < 0 || idx >= len(week[i].Slots) {
				return nil, fmt.Errorf("slot index %d out of range for %s", idx, day)
			}
			return &week[i].Slots[idx], nil
		}
	}
	return nil, fmt.Errorf("day %s missing from grid", day)
}

// Assign applies the token to the grid. It sets only the fields the token
// carries and leaves the other field untouched. Interval and Lunch slots
// are never mutated.
func Assign(week []DaySchedule, cmd AssignToken) error {
	cell, err := findCell(week, cmd.Day, cmd.SlotIndex)
	if err != nil {
		return err
	}
	if cell.Slot.Kind != KindClass {
		return fmt.Errorf("assignments are only permitted on class slots")
	}
	if cmd.SubjectCode == nil && cmd.FacultyID == nil {
		return fmt.Errorf("assignment token carries nothing to assign")
	}
	if cmd.SubjectCode != nil {
		cell.SubjectCode = *cmd.SubjectCode
		if cmd.SubjectType != nil {
			cell.SubjectType = *cmd.SubjectType
		}
	}
	if cmd.FacultyID != nil {
		id := *cmd.FacultyID
		cell.FacultyID = &id
	}
	return nil
}

// Unassign clears exactly one field of one grid cell.
func Unassign(week []DaySchedule, day Weekday, idx int, field AssignField) error {
	cell, err := findCell(week, day, idx)
	if err != nil {
		return err
	}
	if cell.Slot.Kind != KindClass {
		return fmt.Errorf("interval and lunch slots hold no assignments")
	}
	switch field {
	case FieldSubject:
		cell.SubjectCode = ""
		cell.SubjectType = ""
	case FieldFaculty:
		cell.FacultyID = nil
	default:
		return fmt.Errorf("unknown assignment field %q", field)
	}
	return nil
}
