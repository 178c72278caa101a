// file: internals/features/timetable/templates/dto/timetable_template_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/timetable/templates/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
	"campushub_backend/internals/features/timetable/templates/service"
)

/* =========================================================
   Helpers
========================================================= */

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   1) REQUEST DTOs
========================================================= */

// Create
// Note: university id is always taken from the token in the controller.
type CreateTimetableTemplateRequest struct {
	TimetableTemplateYear     model.AcademicYear `json:"timetable_template_year" validate:"required,oneof=First Second Third"`
	TimetableTemplateSemester int                `json:"timetable_template_semester" validate:"required,min=1,max=6"`
	TimetableTemplateDivision string             `json:"timetable_template_division" validate:"required,max=10"`

	TimetableTemplateClassroomID    uuid.UUID  `json:"timetable_template_classroom_id" validate:"required"`
	TimetableTemplateClassTeacherID *uuid.UUID `json:"timetable_template_class_teacher_id" validate:"omitempty"`

	// Bell-schedule parameters; defaults applied when omitted.
	TimetableTemplateDayStart        *string `json:"timetable_template_day_start" validate:"omitempty"`
	TimetableTemplateDayEnd          *string `json:"timetable_template_day_end" validate:"omitempty"`
	TimetableTemplateClassMinutes    *int    `json:"timetable_template_class_minutes" validate:"omitempty,min=1"`
	TimetableTemplateIntervalStart   *string `json:"timetable_template_interval_start" validate:"omitempty"`
	TimetableTemplateIntervalMinutes *int    `json:"timetable_template_interval_minutes" validate:"omitempty,min=1"`
	TimetableTemplateLunchStart      *string `json:"timetable_template_lunch_start" validate:"omitempty"`
	TimetableTemplateLunchMinutes    *int    `json:"timetable_template_lunch_minutes" validate:"omitempty,min=1"`
}

// Update (full replace: scope key, bindings, bell parameters and grid are
// all re-validated as a unit)
type UpdateTimetableTemplateRequest struct {
	TimetableTemplateYear     model.AcademicYear `json:"timetable_template_year" validate:"required,oneof=First Second Third"`
	TimetableTemplateSemester int                `json:"timetable_template_semester" validate:"required,min=1,max=6"`
	TimetableTemplateDivision string             `json:"timetable_template_division" validate:"required,max=10"`

	TimetableTemplateClassroomID    uuid.UUID  `json:"timetable_template_classroom_id" validate:"required"`
	TimetableTemplateClassTeacherID *uuid.UUID `json:"timetable_template_class_teacher_id" validate:"omitempty"`

	TimetableTemplateDayStart        string `json:"timetable_template_day_start" validate:"required"`
	TimetableTemplateDayEnd          string `json:"timetable_template_day_end" validate:"required"`
	TimetableTemplateClassMinutes    int    `json:"timetable_template_class_minutes" validate:"required,min=1"`
	TimetableTemplateIntervalStart   string `json:"timetable_template_interval_start" validate:"required"`
	TimetableTemplateIntervalMinutes int    `json:"timetable_template_interval_minutes" validate:"required,min=1"`
	TimetableTemplateLunchStart      string `json:"timetable_template_lunch_start" validate:"required"`
	TimetableTemplateLunchMinutes    int    `json:"timetable_template_lunch_minutes" validate:"required,min=1"`

	TimetableTemplateDays []WireDay `json:"timetable_template_days" validate:"required,min=1"`
}

// AssignSlotRequest places a subject and/or a faculty member onto one cell.
type AssignSlotRequest struct {
	Day         string  `json:"day" validate:"required"`
	SlotIndex   int     `json:"slot_index" validate:"min=0"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=20"`
	SubjectType *string `json:"subject_type" validate:"omitempty,oneof=Core Lab Elective"`
	FacultyID   *string `json:"faculty_id" validate:"omitempty,uuid"`
}

// UnassignSlotRequest clears exactly one field of one cell.
type UnassignSlotRequest struct {
	Day       string `json:"day" validate:"required"`
	SlotIndex int    `json:"slot_index" validate:"min=0"`
	Field     string `json:"field" validate:"required,oneof=subject faculty"`
}

/* =========================================================
   2) RESPONSE DTOs
========================================================= */

type TimetableTemplateResponse struct {
	TimetableTemplateID           uuid.UUID `json:"timetable_template_id"`
	TimetableTemplateUniversityID uuid.UUID `json:"timetable_template_university_id"`

	TimetableTemplateYear     model.AcademicYear `json:"timetable_template_year"`
	TimetableTemplateSemester int                `json:"timetable_template_semester"`
	TimetableTemplateDivision string             `json:"timetable_template_division"`

	TimetableTemplateClassroomID    uuid.UUID  `json:"timetable_template_classroom_id"`
	TimetableTemplateClassTeacherID *uuid.UUID `json:"timetable_template_class_teacher_id,omitempty"`

	TimetableTemplateDayStart        string `json:"timetable_template_day_start"`
	TimetableTemplateDayEnd          string `json:"timetable_template_day_end"`
	TimetableTemplateClassMinutes    int    `json:"timetable_template_class_minutes"`
	TimetableTemplateIntervalStart   string `json:"timetable_template_interval_start"`
	TimetableTemplateIntervalMinutes int    `json:"timetable_template_interval_minutes"`
	TimetableTemplateLunchStart      string `json:"timetable_template_lunch_start"`
	TimetableTemplateLunchMinutes    int    `json:"timetable_template_lunch_minutes"`

	TimetableTemplateDays   datatypes.JSON       `json:"timetable_template_days"`
	TimetableTemplateStatus model.TemplateStatus `json:"timetable_template_status"`

	TimetableTemplateCreatedAt time.Time `json:"timetable_template_created_at"`
	TimetableTemplateUpdatedAt time.Time `json:"timetable_template_updated_at"`
}

// ConflictRef points the front-end at the template that caused a 409 so it
// can offer "view existing" instead of a dead end.
type ConflictRef struct {
	TimetableTemplateID       uuid.UUID          `json:"timetable_template_id"`
	TimetableTemplateYear     model.AcademicYear `json:"timetable_template_year"`
	TimetableTemplateSemester int                `json:"timetable_template_semester"`
	TimetableTemplateDivision string             `json:"timetable_template_division"`
}

/* =========================================================
   3) MAPPERS
========================================================= */

// BellParams resolves the request's bell parameters over the
// institution defaults.
func (r CreateTimetableTemplateRequest) BellParams() (schedule.BellParams, error) {
	p := schedule.DefaultBellParams()
	var err error
	if v := trimPtr(r.TimetableTemplateDayStart); v != nil {
		if p.DayStart, err = schedule.ParseClock(*v); err != nil {
			return p, err
		}
	}
	if v := trimPtr(r.TimetableTemplateDayEnd); v != nil {
		if p.DayEnd, err = schedule.ParseClock(*v); err != nil {
			return p, err
		}
	}
	if r.TimetableTemplateClassMinutes != nil {
		p.ClassMinutes = *r.TimetableTemplateClassMinutes
	}
	if v := trimPtr(r.TimetableTemplateIntervalStart); v != nil {
		if p.IntervalStart, err = schedule.ParseClock(*v); err != nil {
			return p, err
		}
	}
	if r.TimetableTemplateIntervalMinutes != nil {
		p.IntervalMinutes = *r.TimetableTemplateIntervalMinutes
	}
	if v := trimPtr(r.TimetableTemplateLunchStart); v != nil {
		if p.LunchStart, err = schedule.ParseClock(*v); err != nil {
			return p, err
		}
	}
	if r.TimetableTemplateLunchMinutes != nil {
		p.LunchMinutes = *r.TimetableTemplateLunchMinutes
	}
	return p, nil
}

func (r UpdateTimetableTemplateRequest) BellParams() (schedule.BellParams, error) {
	var p schedule.BellParams
	var err error
	if p.DayStart, err = schedule.ParseClock(r.TimetableTemplateDayStart); err != nil {
		return p, err
	}
	if p.DayEnd, err = schedule.ParseClock(r.TimetableTemplateDayEnd); err != nil {
		return p, err
	}
	p.ClassMinutes = r.TimetableTemplateClassMinutes
	if p.IntervalStart, err = schedule.ParseClock(r.TimetableTemplateIntervalStart); err != nil {
		return p, err
	}
	p.IntervalMinutes = r.TimetableTemplateIntervalMinutes
	if p.LunchStart, err = schedule.ParseClock(r.TimetableTemplateLunchStart); err != nil {
		return p, err
	}
	p.LunchMinutes = r.TimetableTemplateLunchMinutes
	return p, nil
}

// BellParamsFromModel reconstructs the generation parameters persisted on a
// stored template.
func BellParamsFromModel(m *model.TimetableTemplateModel) (schedule.BellParams, error) {
	var p schedule.BellParams
	var err error
	if p.DayStart, err = schedule.ParseClock(m.TimetableTemplateDayStart); err != nil {
		return p, err
	}
	if p.DayEnd, err = schedule.ParseClock(m.TimetableTemplateDayEnd); err != nil {
		return p, err
	}
	p.ClassMinutes = m.TimetableTemplateClassMinutes
	if p.IntervalStart, err = schedule.ParseClock(m.TimetableTemplateIntervalStart); err != nil {
		return p, err
	}
	p.IntervalMinutes = m.TimetableTemplateIntervalMinutes
	if p.LunchStart, err = schedule.ParseClock(m.TimetableTemplateLunchStart); err != nil {
		return p, err
	}
	p.LunchMinutes = m.TimetableTemplateLunchMinutes
	return p, nil
}

// ApplyBellParams writes the generation parameters onto the model.
func ApplyBellParams(m *model.TimetableTemplateModel, p schedule.BellParams) {
	m.TimetableTemplateDayStart = p.DayStart.String()
	m.TimetableTemplateDayEnd = p.DayEnd.String()
	m.TimetableTemplateClassMinutes = p.ClassMinutes
	m.TimetableTemplateIntervalStart = p.IntervalStart.String()
	m.TimetableTemplateIntervalMinutes = p.IntervalMinutes
	m.TimetableTemplateLunchStart = p.LunchStart.String()
	m.TimetableTemplateLunchMinutes = p.LunchMinutes
}

func FromTimetableTemplateModel(m model.TimetableTemplateModel) TimetableTemplateResponse {
	return TimetableTemplateResponse{
		TimetableTemplateID:           m.TimetableTemplateID,
		TimetableTemplateUniversityID: m.TimetableTemplateUniversityID,

		TimetableTemplateYear:     m.TimetableTemplateYear,
		TimetableTemplateSemester: m.TimetableTemplateSemester,
		TimetableTemplateDivision: m.TimetableTemplateDivision,

		TimetableTemplateClassroomID:    m.TimetableTemplateClassroomID,
		TimetableTemplateClassTeacherID: m.TimetableTemplateClassTeacherID,

		TimetableTemplateDayStart:        m.TimetableTemplateDayStart,
		TimetableTemplateDayEnd:          m.TimetableTemplateDayEnd,
		TimetableTemplateClassMinutes:    m.TimetableTemplateClassMinutes,
		TimetableTemplateIntervalStart:   m.TimetableTemplateIntervalStart,
		TimetableTemplateIntervalMinutes: m.TimetableTemplateIntervalMinutes,
		TimetableTemplateLunchStart:      m.TimetableTemplateLunchStart,
		TimetableTemplateLunchMinutes:    m.TimetableTemplateLunchMinutes,

		TimetableTemplateDays:   m.TimetableTemplateDays,
		TimetableTemplateStatus: m.TimetableTemplateStatus,

		TimetableTemplateCreatedAt: m.TimetableTemplateCreatedAt,
		TimetableTemplateUpdatedAt: m.TimetableTemplateUpdatedAt,
	}
}

func ConflictRefFrom(t service.TemplateSnapshot) ConflictRef {
	return ConflictRef{
		TimetableTemplateID:       t.ID,
		TimetableTemplateYear:     t.Year,
		TimetableTemplateSemester: t.Semester,
		TimetableTemplateDivision: t.Division,
	}
}
