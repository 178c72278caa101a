// file: internals/features/attendance/sessions/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   AttendanceSessionModel — maps to attendance_sessions.
   One session = one timetable slot taught to one division
   on one date; per-student marks live in attendance_records.
   ======================================================= */

type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" gorm:"type:uuid;primaryKey;column:attendance_session_id;default:gen_random_uuid()"`

	// Tenant / scope
	AttendanceSessionUniversityID uuid.UUID `json:"attendance_session_university_id" gorm:"type:uuid;not null;column:attendance_session_university_id;index"`

	// Division scope key
	AttendanceSessionYear     string `json:"attendance_session_year" gorm:"type:varchar(12);not null;column:attendance_session_year"`
	AttendanceSessionSemester int    `json:"attendance_session_semester" gorm:"not null;column:attendance_session_semester"`
	AttendanceSessionDivision string `json:"attendance_session_division" gorm:"type:varchar(10);not null;column:attendance_session_division"`

	AttendanceSessionDate time.Time `json:"attendance_session_date" gorm:"type:date;not null;column:attendance_session_date;index"`

	// Slot time range, "HH:MM"
	AttendanceSessionStartTime string `json:"attendance_session_start_time" gorm:"type:varchar(5);not null;column:attendance_session_start_time"`
	AttendanceSessionEndTime   string `json:"attendance_session_end_time" gorm:"type:varchar(5);not null;column:attendance_session_end_time"`

	AttendanceSessionSubjectCode string    `json:"attendance_session_subject_code" gorm:"type:text;not null;column:attendance_session_subject_code"`
	AttendanceSessionFacultyID   uuid.UUID `json:"attendance_session_faculty_id" gorm:"type:uuid;not null;column:attendance_session_faculty_id;index"`

	// Timestamps (auto create/update)
	AttendanceSessionCreatedAt time.Time      `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;not null;autoCreateTime"`
	AttendanceSessionUpdatedAt time.Time      `json:"attendance_session_updated_at" gorm:"column:attendance_session_updated_at;not null;autoUpdateTime"`
	AttendanceSessionDeletedAt gorm.DeletedAt `json:"attendance_session_deleted_at" gorm:"column:attendance_session_deleted_at;index"`

	// Eager-loaded records
	Records []AttendanceRecordModel `json:"records,omitempty" gorm:"foreignKey:AttendanceRecordSessionID;references:AttendanceSessionID"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}
