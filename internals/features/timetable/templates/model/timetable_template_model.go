// file: internals/features/timetable/templates/model/timetable_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enums
   ======================================================= */

type TemplateStatus string

const (
	StatusDraft     TemplateStatus = "draft"
	StatusPublished TemplateStatus = "published"
)

type AcademicYear string

const (
	YearFirst  AcademicYear = "First"
	YearSecond AcademicYear = "Second"
	YearThird  AcademicYear = "Third"
)

func ValidAcademicYear(y AcademicYear) bool {
	return y == YearFirst || y == YearSecond || y == YearThird
}

/* =======================================================
   TimetableTemplateModel — maps to timetable_templates.

   Scope key (year, semester, division) is unique among
   active templates per university; so is the classroom,
   and the class teacher when set. The bell-schedule
   generation parameters are persisted so the grid can be
   reconstructed without re-deriving break windows from
   slot-time gaps.
   ======================================================= */

type TimetableTemplateModel struct {
	// PK
	TimetableTemplateID uuid.UUID `json:"timetable_template_id" gorm:"type:uuid;primaryKey;column:timetable_template_id;default:gen_random_uuid()"`

	// Tenant / scope
	TimetableTemplateUniversityID uuid.UUID `json:"timetable_template_university_id" gorm:"type:uuid;not null;column:timetable_template_university_id;index"`

	// Scope key
	TimetableTemplateYear     AcademicYear `json:"timetable_template_year" gorm:"type:text;not null;column:timetable_template_year"`
	TimetableTemplateSemester int          `json:"timetable_template_semester" gorm:"type:int;not null;column:timetable_template_semester"`
	TimetableTemplateDivision string       `json:"timetable_template_division" gorm:"type:text;not null;column:timetable_template_division"`

	// Resource bindings
	TimetableTemplateClassroomID    uuid.UUID  `json:"timetable_template_classroom_id" gorm:"type:uuid;not null;column:timetable_template_classroom_id"`
	TimetableTemplateClassTeacherID *uuid.UUID `json:"timetable_template_class_teacher_id,omitempty" gorm:"type:uuid;column:timetable_template_class_teacher_id"`

	// Bell-schedule generation parameters ("HH:MM" clock texts)
	TimetableTemplateDayStart        string `json:"timetable_template_day_start" gorm:"type:text;not null;default:'09:00';column:timetable_template_day_start"`
	TimetableTemplateDayEnd          string `json:"timetable_template_day_end" gorm:"type:text;not null;default:'16:15';column:timetable_template_day_end"`
	TimetableTemplateClassMinutes    int    `json:"timetable_template_class_minutes" gorm:"type:int;not null;default:60;column:timetable_template_class_minutes"`
	TimetableTemplateIntervalStart   string `json:"timetable_template_interval_start" gorm:"type:text;not null;column:timetable_template_interval_start"`
	TimetableTemplateIntervalMinutes int    `json:"timetable_template_interval_minutes" gorm:"type:int;not null;column:timetable_template_interval_minutes"`
	TimetableTemplateLunchStart      string `json:"timetable_template_lunch_start" gorm:"type:text;not null;column:timetable_template_lunch_start"`
	TimetableTemplateLunchMinutes    int    `json:"timetable_template_lunch_minutes" gorm:"type:int;not null;column:timetable_template_lunch_minutes"`

	// Day grid: [{day, slots: [{time, kind, type, startTime, endTime, subjectCode, facultyId}]}]
	TimetableTemplateDays datatypes.JSON `json:"timetable_template_days" gorm:"type:jsonb;not null;column:timetable_template_days"`

	// Status & metadata
	TimetableTemplateStatus TemplateStatus `json:"timetable_template_status" gorm:"type:text;not null;default:'draft';column:timetable_template_status"`

	// Timestamps (auto create/update)
	TimetableTemplateCreatedAt time.Time      `json:"timetable_template_created_at" gorm:"column:timetable_template_created_at;not null;autoCreateTime"`
	TimetableTemplateUpdatedAt time.Time      `json:"timetable_template_updated_at" gorm:"column:timetable_template_updated_at;not null;autoUpdateTime"`
	TimetableTemplateDeletedAt gorm.DeletedAt `json:"timetable_template_deleted_at" gorm:"column:timetable_template_deleted_at;index"`
}

func (TimetableTemplateModel) TableName() string {
	return "timetable_templates"
}
