// file: internals/features/events/calendar/model/calendar_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   CalendarEventModel — maps to calendar_events.
   ======================================================= */

type EventCategory string

const (
	CategoryHoliday  EventCategory = "holiday"
	CategoryExam     EventCategory = "exam"
	CategoryEvent    EventCategory = "event"
	CategoryDeadline EventCategory = "deadline"
)

func ValidEventCategory(c EventCategory) bool {
	switch c {
	case CategoryHoliday, CategoryExam, CategoryEvent, CategoryDeadline:
		return true
	}
	return false
}

type CalendarEventModel struct {
	// PK
	CalendarEventID uuid.UUID `json:"calendar_event_id" gorm:"type:uuid;primaryKey;column:calendar_event_id;default:gen_random_uuid()"`

	// Tenant / scope
	CalendarEventUniversityID uuid.UUID `json:"calendar_event_university_id" gorm:"type:uuid;not null;column:calendar_event_university_id;index"`

	CalendarEventTitle       string        `json:"calendar_event_title" gorm:"type:text;not null;column:calendar_event_title"`
	CalendarEventDescription string        `json:"calendar_event_description" gorm:"type:text;column:calendar_event_description"`
	CalendarEventCategory    EventCategory `json:"calendar_event_category" gorm:"type:varchar(12);not null;column:calendar_event_category;index"`

	CalendarEventStartDate time.Time `json:"calendar_event_start_date" gorm:"type:date;not null;column:calendar_event_start_date;index"`
	CalendarEventEndDate   time.Time `json:"calendar_event_end_date" gorm:"type:date;not null;column:calendar_event_end_date"`

	// Who the event targets: students, faculty, all.
	CalendarEventAudience pq.StringArray `json:"calendar_event_audience" gorm:"type:text[];column:calendar_event_audience"`

	// Timestamps (auto create/update)
	CalendarEventCreatedAt time.Time      `json:"calendar_event_created_at" gorm:"column:calendar_event_created_at;not null;autoCreateTime"`
	CalendarEventUpdatedAt time.Time      `json:"calendar_event_updated_at" gorm:"column:calendar_event_updated_at;not null;autoUpdateTime"`
	CalendarEventDeletedAt gorm.DeletedAt `json:"calendar_event_deleted_at" gorm:"column:calendar_event_deleted_at;index"`
}

func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
