// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectType string

const (
	SubjectCore     SubjectType = "Core"
	SubjectLab      SubjectType = "Lab"
	SubjectElective SubjectType = "Elective"
)

/* =======================================================
   SubjectModel — maps to subjects.

   Archive is distinct from delete: an archived subject
   stays referenceable from existing timetables but is
   hidden from pick lists until restored.
   ======================================================= */

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	// Tenant / scope
	SubjectUniversityID uuid.UUID `json:"subject_university_id" gorm:"type:uuid;not null;column:subject_university_id;index"`

	SubjectCode        string      `json:"subject_code" gorm:"type:text;not null;column:subject_code"`
	SubjectName        string      `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	SubjectType        SubjectType `json:"subject_type" gorm:"type:text;not null;column:subject_type"`
	SubjectWeeklyHours int         `json:"subject_weekly_hours" gorm:"type:int;not null;default:0;column:subject_weekly_hours"`

	// Which cohort the subject is taught to
	SubjectYear     string `json:"subject_year" gorm:"type:text;not null;column:subject_year"`
	SubjectSemester int    `json:"subject_semester" gorm:"type:int;not null;column:subject_semester"`

	SubjectIsArchived bool       `json:"subject_is_archived" gorm:"type:boolean;not null;default:false;column:subject_is_archived"`
	SubjectArchivedAt *time.Time `json:"subject_archived_at,omitempty" gorm:"column:subject_archived_at"`

	// Timestamps (auto create/update)
	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
