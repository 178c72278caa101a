// file: internals/features/academics/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/classrooms/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClassroomRequest struct {
	ClassroomName     string `json:"classroom_name" validate:"required,max=120"`
	ClassroomCapacity int    `json:"classroom_capacity" validate:"required,min=1,max=1000"`
}

type UpdateClassroomRequest struct {
	ClassroomName     *string `json:"classroom_name" validate:"omitempty,max=120"`
	ClassroomCapacity *int    `json:"classroom_capacity" validate:"omitempty,min=1,max=1000"`
}

/* ========== RESPONSE DTO ========== */

type ClassroomResponse struct {
	ClassroomID           uuid.UUID `json:"classroom_id"`
	ClassroomUniversityID uuid.UUID `json:"classroom_university_id"`
	ClassroomName         string    `json:"classroom_name"`
	ClassroomCapacity     int       `json:"classroom_capacity"`
	ClassroomCreatedAt    time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt    time.Time `json:"classroom_updated_at"`
}

/* ========== MAPPERS ========== */

func (r CreateClassroomRequest) ToModel(universityID uuid.UUID) model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomUniversityID: universityID,
		ClassroomName:         strings.TrimSpace(r.ClassroomName),
		ClassroomCapacity:     r.ClassroomCapacity,
	}
}

func (r UpdateClassroomRequest) Apply(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = strings.TrimSpace(*r.ClassroomName)
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = *r.ClassroomCapacity
	}
}

func FromClassroomModel(m model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:           m.ClassroomID,
		ClassroomUniversityID: m.ClassroomUniversityID,
		ClassroomName:         m.ClassroomName,
		ClassroomCapacity:     m.ClassroomCapacity,
		ClassroomCreatedAt:    m.ClassroomCreatedAt,
		ClassroomUpdatedAt:    m.ClassroomUpdatedAt,
	}
}
