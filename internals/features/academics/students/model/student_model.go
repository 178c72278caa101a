// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   StudentModel — maps to students.
   Listed by (year, semester, division) for attendance marking.
   ======================================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Tenant / scope
	StudentUniversityID uuid.UUID `json:"student_university_id" gorm:"type:uuid;not null;column:student_university_id;index"`

	// Roll number is unique per university.
	StudentRollNumber string `json:"student_roll_number" gorm:"type:text;not null;column:student_roll_number;index"`
	StudentName       string `json:"student_name" gorm:"type:text;not null;column:student_name"`
	StudentEmail      string `json:"student_email" gorm:"type:text;not null;column:student_email"`

	StudentYear     string `json:"student_year" gorm:"type:varchar(12);not null;column:student_year"`
	StudentSemester int    `json:"student_semester" gorm:"not null;column:student_semester"`
	StudentDivision string `json:"student_division" gorm:"type:varchar(10);not null;column:student_division"`

	// Timestamps (auto create/update)
	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
