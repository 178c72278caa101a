// file: internals/features/academics/faculty/model/faculty_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   FacultyModel — maps to faculty.
   Referent of faculty_id and class_teacher_id elsewhere.
   ======================================================= */

type FacultyModel struct {
	// PK
	FacultyID uuid.UUID `json:"faculty_id" gorm:"type:uuid;primaryKey;column:faculty_id;default:gen_random_uuid()"`

	// Tenant / scope
	FacultyUniversityID uuid.UUID `json:"faculty_university_id" gorm:"type:uuid;not null;column:faculty_university_id;index"`

	FacultyName       string `json:"faculty_name" gorm:"type:text;not null;column:faculty_name"`
	FacultyEmail      string `json:"faculty_email" gorm:"type:text;not null;column:faculty_email"`
	FacultyDepartment string `json:"faculty_department" gorm:"type:text;not null;column:faculty_department"`

	// Timestamps (auto create/update)
	FacultyCreatedAt time.Time      `json:"faculty_created_at" gorm:"column:faculty_created_at;not null;autoCreateTime"`
	FacultyUpdatedAt time.Time      `json:"faculty_updated_at" gorm:"column:faculty_updated_at;not null;autoUpdateTime"`
	FacultyDeletedAt gorm.DeletedAt `json:"faculty_deleted_at" gorm:"column:faculty_deleted_at;index"`
}

func (FacultyModel) TableName() string {
	return "faculty"
}
