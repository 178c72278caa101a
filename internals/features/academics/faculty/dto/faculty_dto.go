// file: internals/features/academics/faculty/dto/faculty_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/faculty/model"
)

/* ========== REQUEST DTOs ========== */

type CreateFacultyRequest struct {
	FacultyName       string `json:"faculty_name" validate:"required,max=120"`
	FacultyEmail      string `json:"faculty_email" validate:"required,email,max=254"`
	FacultyDepartment string `json:"faculty_department" validate:"required,max=120"`
}

type UpdateFacultyRequest struct {
	FacultyName       *string `json:"faculty_name" validate:"omitempty,max=120"`
	FacultyEmail      *string `json:"faculty_email" validate:"omitempty,email,max=254"`
	FacultyDepartment *string `json:"faculty_department" validate:"omitempty,max=120"`
}

/* ========== RESPONSE DTO ========== */

type FacultyResponse struct {
	FacultyID           uuid.UUID `json:"faculty_id"`
	FacultyUniversityID uuid.UUID `json:"faculty_university_id"`
	FacultyName         string    `json:"faculty_name"`
	FacultyEmail        string    `json:"faculty_email"`
	FacultyDepartment   string    `json:"faculty_department"`
	FacultyCreatedAt    time.Time `json:"faculty_created_at"`
	FacultyUpdatedAt    time.Time `json:"faculty_updated_at"`
}

/* ========== MAPPERS ========== */

func (r CreateFacultyRequest) ToModel(universityID uuid.UUID) model.FacultyModel {
	return model.FacultyModel{
		FacultyUniversityID: universityID,
		FacultyName:         strings.TrimSpace(r.FacultyName),
		FacultyEmail:        strings.ToLower(strings.TrimSpace(r.FacultyEmail)),
		FacultyDepartment:   strings.TrimSpace(r.FacultyDepartment),
	}
}

func (r UpdateFacultyRequest) Apply(m *model.FacultyModel) {
	if r.FacultyName != nil {
		m.FacultyName = strings.TrimSpace(*r.FacultyName)
	}
	if r.FacultyEmail != nil {
		m.FacultyEmail = strings.ToLower(strings.TrimSpace(*r.FacultyEmail))
	}
	if r.FacultyDepartment != nil {
		m.FacultyDepartment = strings.TrimSpace(*r.FacultyDepartment)
	}
}

func FromFacultyModel(m model.FacultyModel) FacultyResponse {
	return FacultyResponse{
		FacultyID:           m.FacultyID,
		FacultyUniversityID: m.FacultyUniversityID,
		FacultyName:         m.FacultyName,
		FacultyEmail:        m.FacultyEmail,
		FacultyDepartment:   m.FacultyDepartment,
		FacultyCreatedAt:    m.FacultyCreatedAt,
		FacultyUpdatedAt:    m.FacultyUpdatedAt,
	}
}
