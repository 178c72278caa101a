// file: internals/features/events/calendar/dto/calendar_event_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateEventToModel(t *testing.T) {
	universityID := uuid.New()
	req := CreateCalendarEventRequest{
		Title:     "  Midterm Exams ",
		Category:  "exam",
		StartDate: "2026-09-14",
		EndDate:   "2026-09-18",
		Audience:  []string{"Student", "student", "faculty"},
	}
	m, err := req.ToModel(universityID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.CalendarEventTitle != "Midterm Exams" {
		t.Errorf("title not trimmed: %q", m.CalendarEventTitle)
	}
	if len(m.CalendarEventAudience) != 2 {
		t.Errorf("audience not deduplicated: %v", m.CalendarEventAudience)
	}

	// end before start
	req.EndDate = "2026-09-01"
	if _, err := req.ToModel(universityID); err == nil {
		t.Error("inverted date range accepted")
	}

	// single-day event is fine
	req.EndDate = req.StartDate
	if _, err := req.ToModel(universityID); err != nil {
		t.Errorf("single-day event rejected: %v", err)
	}

	req.StartDate = "14/09/2026"
	if _, err := req.ToModel(universityID); err == nil {
		t.Error("malformed date accepted")
	}
}

func TestNormalizeAudienceCollapsesAll(t *testing.T) {
	got := normalizeAudience([]string{"student", "ALL", "faculty"})
	if len(got) != 1 || got[0] != "all" {
		t.Errorf("audience with all not collapsed: %v", got)
	}
}

func TestUpdateApplyRevalidatesRange(t *testing.T) {
	universityID := uuid.New()
	m, err := CreateCalendarEventRequest{
		Title:     "Founders Day",
		Category:  "holiday",
		StartDate: "2026-10-02",
		EndDate:   "2026-10-02",
		Audience:  []string{"all"},
	}.ToModel(universityID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	// moving start past end must fail even when end is untouched
	bad := "2026-10-10"
	if err := (UpdateCalendarEventRequest{StartDate: &bad}).Apply(&m); err == nil {
		t.Error("start moved past end without error")
	}

	good := "2026-10-01"
	if err := (UpdateCalendarEventRequest{StartDate: &good}).Apply(&m); err != nil {
		t.Errorf("valid update rejected: %v", err)
	}
	if m.CalendarEventStartDate.Format("2006-01-02") != "2026-10-01" {
		t.Errorf("start not applied: %v", m.CalendarEventStartDate)
	}
}
