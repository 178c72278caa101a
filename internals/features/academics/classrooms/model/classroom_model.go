// file: internals/features/academics/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassroomModel — maps to classrooms.
   Referent of classroom_id on timetable templates.
   ======================================================= */

type ClassroomModel struct {
	// PK
	ClassroomID uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassroomUniversityID uuid.UUID `json:"classroom_university_id" gorm:"type:uuid;not null;column:classroom_university_id;index"`

	ClassroomName     string `json:"classroom_name" gorm:"type:text;not null;column:classroom_name"`
	ClassroomCapacity int    `json:"classroom_capacity" gorm:"not null;column:classroom_capacity"`

	// Timestamps (auto create/update)
	ClassroomCreatedAt time.Time      `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `json:"classroom_updated_at" gorm:"column:classroom_updated_at;not null;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `json:"classroom_deleted_at" gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
