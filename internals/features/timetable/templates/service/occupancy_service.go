// file: internals/features/timetable/templates/service/occupancy_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campushub_backend/internals/features/timetable/templates/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
)

/* =========================================================
   Occupancy / conflict checks.

   Pure predicates over a snapshot of the other active
   templates in the same university. Controllers build the
   snapshot inside the same transaction that writes, so the
   check-and-write pair is atomic and the client-side checks
   on the front-end remain optimistic hints only.
   ========================================================= */

// TemplateSnapshot is the slice of a stored template the predicates need.
type TemplateSnapshot struct {
	ID             uuid.UUID
	Year           model.AcademicYear
	Semester       int
	Division       string
	ClassroomID    uuid.UUID
	ClassTeacherID *uuid.UUID
	Days           []schedule.DaySchedule
}

// ScopeLabel renders "Second Year, Sem 4, Div B" for conflict messages.
func (t TemplateSnapshot) ScopeLabel() string {
	return fmt.Sprintf("%s Year, Sem %d, Div %s", t.Year, t.Semester, t.Division)
}

// others filters the snapshot down to templates other than the one being
// edited. A zero editingID (new template) excludes nothing.
func others(snapshot []TemplateSnapshot, editingID uuid.UUID) []TemplateSnapshot {
	if editingID == uuid.Nil {
		return snapshot
	}
	out := make([]TemplateSnapshot, 0, len(snapshot))
	for _, t := range snapshot {
		if t.ID != editingID {
			out = append(out, t)
		}
	}
	return out
}

// FacultyOccupied reports whether the faculty member is already assigned in
// another template on the same day at exactly the same time range. Only
// exact start/end equality counts; the same faculty may teach a different
// slot on the same day elsewhere.
func FacultyOccupied(snapshot []TemplateSnapshot, editingID, facultyID uuid.UUID, day schedule.Weekday, start, end schedule.LocalTime) (bool, *TemplateSnapshot) {
	for _, t := range others(snapshot, editingID) {
		for _, d := range t.Days {
			if d.Day != day {
				continue
			}
			for _, a := range d.Slots {
				if a.FacultyID != nil && *a.FacultyID == facultyID &&
					a.Slot.Start == start && a.Slot.End == end {
					match := t
					return true, &match
				}
			}
		}
	}
	return false, nil
}

// ClassroomOccupied reports whether the classroom is bound to another
// division. A classroom serves one division for the whole term, so the
// check is independent of day and time.
func ClassroomOccupied(snapshot []TemplateSnapshot, editingID, classroomID uuid.UUID) (bool, *TemplateSnapshot) {
	for _, t := range others(snapshot, editingID) {
		if t.ClassroomID == classroomID {
			match := t
			return true, &match
		}
	}
	return false, nil
}

// ClassTeacherElsewhere reports whether the faculty member is already the
// designated class teacher of another division.
func ClassTeacherElsewhere(snapshot []TemplateSnapshot, editingID, facultyID uuid.UUID) (bool, *TemplateSnapshot) {
	for _, t := range others(snapshot, editingID) {
		if t.ClassTeacherID != nil && *t.ClassTeacherID == facultyID {
			match := t
			return true, &match
		}
	}
	return false, nil
}

// FindDuplicate returns the existing template with an identical
// (year, semester, division) scope key, if any. Division comparison is
// case-insensitive.
func FindDuplicate(snapshot []TemplateSnapshot, editingID uuid.UUID, year model.AcademicYear, semester int, division string) *TemplateSnapshot {
	for _, t := range others(snapshot, editingID) {
		if t.Year == year && t.Semester == semester &&
			strings.EqualFold(t.Division, division) {
			match := t
			return &match
		}
	}
	return nil
}

// FacultyGridConflict re-validates a whole grid against the snapshot: it
// returns the first cell whose faculty is double-booked elsewhere. Save
// runs this so a grid edited under a stale snapshot cannot slip through.
type GridConflict struct {
	Day      schedule.Weekday
	Slot     schedule.TimeSlot
	Faculty  uuid.UUID
	Existing TemplateSnapshot
}

func FacultyGridConflict(snapshot []TemplateSnapshot, editingID uuid.UUID, week []schedule.DaySchedule) *GridConflict {
	for _, d := range week {
		for _, a := range d.Slots {
			if a.FacultyID == nil {
				continue
			}
			if ok, existing := FacultyOccupied(snapshot, editingID, *a.FacultyID, d.Day, a.Slot.Start, a.Slot.End); ok {
				return &GridConflict{
					Day:      d.Day,
					Slot:     a.Slot,
					Faculty:  *a.FacultyID,
					Existing: *existing,
				}
			}
		}
	}
	return nil
}
