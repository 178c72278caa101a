// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/subjects/model"
)

/* =========================================================
   1) REQUEST DTOs
========================================================= */

// Create
// Note: subject_university_id always comes from the token in the controller.
type CreateSubjectRequest struct {
	SubjectCode        string            `json:"subject_code" validate:"required,max=20"`
	SubjectName        string            `json:"subject_name" validate:"required,max=120"`
	SubjectType        model.SubjectType `json:"subject_type" validate:"required,oneof=Core Lab Elective"`
	SubjectWeeklyHours int               `json:"subject_weekly_hours" validate:"min=0,max=40"`
	SubjectYear        string            `json:"subject_year" validate:"required,oneof=First Second Third"`
	SubjectSemester    int               `json:"subject_semester" validate:"required,min=1,max=6"`
}

// Update (partial)
type UpdateSubjectRequest struct {
	SubjectCode        *string            `json:"subject_code" validate:"omitempty,max=20"`
	SubjectName        *string            `json:"subject_name" validate:"omitempty,max=120"`
	SubjectType        *model.SubjectType `json:"subject_type" validate:"omitempty,oneof=Core Lab Elective"`
	SubjectWeeklyHours *int               `json:"subject_weekly_hours" validate:"omitempty,min=0,max=40"`
	SubjectYear        *string            `json:"subject_year" validate:"omitempty,oneof=First Second Third"`
	SubjectSemester    *int               `json:"subject_semester" validate:"omitempty,min=1,max=6"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type SubjectResponse struct {
	SubjectID           uuid.UUID         `json:"subject_id"`
	SubjectUniversityID uuid.UUID         `json:"subject_university_id"`
	SubjectCode         string            `json:"subject_code"`
	SubjectName         string            `json:"subject_name"`
	SubjectType         model.SubjectType `json:"subject_type"`
	SubjectWeeklyHours  int               `json:"subject_weekly_hours"`
	SubjectYear         string            `json:"subject_year"`
	SubjectSemester     int               `json:"subject_semester"`
	SubjectIsArchived   bool              `json:"subject_is_archived"`
	SubjectArchivedAt   *time.Time        `json:"subject_archived_at,omitempty"`
	SubjectCreatedAt    time.Time         `json:"subject_created_at"`
	SubjectUpdatedAt    time.Time         `json:"subject_updated_at"`
}

/* =========================================================
   3) MAPPERS
========================================================= */

func (r CreateSubjectRequest) ToModel(universityID uuid.UUID) model.SubjectModel {
	return model.SubjectModel{
		SubjectUniversityID: universityID,
		SubjectCode:         strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectName:         strings.TrimSpace(r.SubjectName),
		SubjectType:         r.SubjectType,
		SubjectWeeklyHours:  r.SubjectWeeklyHours,
		SubjectYear:         r.SubjectYear,
		SubjectSemester:     r.SubjectSemester,
	}
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectType != nil {
		m.SubjectType = *r.SubjectType
	}
	if r.SubjectWeeklyHours != nil {
		m.SubjectWeeklyHours = *r.SubjectWeeklyHours
	}
	if r.SubjectYear != nil {
		m.SubjectYear = *r.SubjectYear
	}
	if r.SubjectSemester != nil {
		m.SubjectSemester = *r.SubjectSemester
	}
}

func FromSubjectModel(m model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:           m.SubjectID,
		SubjectUniversityID: m.SubjectUniversityID,
		SubjectCode:         m.SubjectCode,
		SubjectName:         m.SubjectName,
		SubjectType:         m.SubjectType,
		SubjectWeeklyHours:  m.SubjectWeeklyHours,
		SubjectYear:         m.SubjectYear,
		SubjectSemester:     m.SubjectSemester,
		SubjectIsArchived:   m.SubjectIsArchived,
		SubjectArchivedAt:   m.SubjectArchivedAt,
		SubjectCreatedAt:    m.SubjectCreatedAt,
		SubjectUpdatedAt:    m.SubjectUpdatedAt,
	}
}
