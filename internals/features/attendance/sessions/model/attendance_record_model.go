// file: internals/features/attendance/sessions/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   AttendanceRecordModel — maps to attendance_records.
   One mark per (session, student).
   ======================================================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `json:"attendance_record_id" gorm:"type:uuid;primaryKey;column:attendance_record_id;default:gen_random_uuid()"`

	AttendanceRecordSessionID uuid.UUID `json:"attendance_record_session_id" gorm:"type:uuid;not null;column:attendance_record_session_id;index"`
	AttendanceRecordStudentID uuid.UUID `json:"attendance_record_student_id" gorm:"type:uuid;not null;column:attendance_record_student_id;index"`

	AttendanceRecordStatus AttendanceStatus `json:"attendance_record_status" gorm:"type:varchar(10);not null;column:attendance_record_status"`

	// Timestamps (auto create/update)
	AttendanceRecordCreatedAt time.Time `json:"attendance_record_created_at" gorm:"column:attendance_record_created_at;not null;autoCreateTime"`
	AttendanceRecordUpdatedAt time.Time `json:"attendance_record_updated_at" gorm:"column:attendance_record_updated_at;not null;autoUpdateTime"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
