// file: internals/features/timetable/templates/dto/timetable_template_dto_test.go
package dto

import (
	"testing"

	"campushub_backend/internals/features/timetable/templates/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateRequestBellParamsDefaults(t *testing.T) {
	p, err := (CreateTimetableTemplateRequest{}).BellParams()
	if err != nil {
		t.Fatalf("BellParams: %v", err)
	}
	if p != schedule.DefaultBellParams() {
		t.Errorf("empty request did not resolve to defaults: %+v", p)
	}
}

func TestCreateRequestBellParamsOverrides(t *testing.T) {
	req := CreateTimetableTemplateRequest{
		TimetableTemplateDayStart:     strPtr("08:00"),
		TimetableTemplateClassMinutes: intPtr(45),
	}
	p, err := req.BellParams()
	if err != nil {
		t.Fatalf("BellParams: %v", err)
	}
	if p.DayStart != schedule.MustClock("08:00") || p.ClassMinutes != 45 {
		t.Errorf("overrides not applied: %+v", p)
	}
	// untouched fields keep their defaults
	if p.LunchStart != schedule.DefaultBellParams().LunchStart {
		t.Errorf("default lunch start lost: %+v", p)
	}

	req.TimetableTemplateDayStart = strPtr("8 o'clock")
	if _, err := req.BellParams(); err == nil {
		t.Error("malformed clock accepted")
	}
}

func TestBellParamsModelRoundTrip(t *testing.T) {
	want := schedule.BellParams{
		DayStart:        schedule.MustClock("08:30"),
		DayEnd:          schedule.MustClock("15:00"),
		ClassMinutes:    50,
		IntervalStart:   schedule.MustClock("10:10"),
		IntervalMinutes: 20,
		LunchStart:      schedule.MustClock("12:00"),
		LunchMinutes:    40,
	}

	var m model.TimetableTemplateModel
	ApplyBellParams(&m, want)
	if m.TimetableTemplateDayStart != "08:30" || m.TimetableTemplateLunchStart != "12:00" {
		t.Errorf("params not written as HH:MM text: %+v", m)
	}

	got, err := BellParamsFromModel(&m)
	if err != nil {
		t.Fatalf("BellParamsFromModel: %v", err)
	}
	if got != want {
		t.Errorf("round trip changed params: %+v vs %+v", got, want)
	}
}
