// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/students/model"
)

/* ========== REQUEST DTOs ========== */

type CreateStudentRequest struct {
	StudentRollNumber string `json:"student_roll_number" validate:"required,max=32"`
	StudentName       string `json:"student_name" validate:"required,max=120"`
	StudentEmail      string `json:"student_email" validate:"required,email,max=254"`
	StudentYear       string `json:"student_year" validate:"required,oneof=First Second Third"`
	StudentSemester   int    `json:"student_semester" validate:"required,min=1,max=6"`
	StudentDivision   string `json:"student_division" validate:"required,max=10"`
}

type UpdateStudentRequest struct {
	StudentRollNumber *string `json:"student_roll_number" validate:"omitempty,max=32"`
	StudentName       *string `json:"student_name" validate:"omitempty,max=120"`
	StudentEmail      *string `json:"student_email" validate:"omitempty,email,max=254"`
	StudentYear       *string `json:"student_year" validate:"omitempty,oneof=First Second Third"`
	StudentSemester   *int    `json:"student_semester" validate:"omitempty,min=1,max=6"`
	StudentDivision   *string `json:"student_division" validate:"omitempty,max=10"`
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	StudentID           uuid.UUID `json:"student_id"`
	StudentUniversityID uuid.UUID `json:"student_university_id"`
	StudentRollNumber   string    `json:"student_roll_number"`
	StudentName         string    `json:"student_name"`
	StudentEmail        string    `json:"student_email"`
	StudentYear         string    `json:"student_year"`
	StudentSemester     int       `json:"student_semester"`
	StudentDivision     string    `json:"student_division"`
	StudentCreatedAt    time.Time `json:"student_created_at"`
	StudentUpdatedAt    time.Time `json:"student_updated_at"`
}

/* ========== MAPPERS ========== */

func (r CreateStudentRequest) ToModel(universityID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		StudentUniversityID: universityID,
		StudentRollNumber:   strings.TrimSpace(r.StudentRollNumber),
		StudentName:         strings.TrimSpace(r.StudentName),
		StudentEmail:        strings.ToLower(strings.TrimSpace(r.StudentEmail)),
		StudentYear:         r.StudentYear,
		StudentSemester:     r.StudentSemester,
		StudentDivision:     strings.ToUpper(strings.TrimSpace(r.StudentDivision)),
	}
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentRollNumber != nil {
		m.StudentRollNumber = strings.TrimSpace(*r.StudentRollNumber)
	}
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentEmail != nil {
		m.StudentEmail = strings.ToLower(strings.TrimSpace(*r.StudentEmail))
	}
	if r.StudentYear != nil {
		m.StudentYear = *r.StudentYear
	}
	if r.StudentSemester != nil {
		m.StudentSemester = *r.StudentSemester
	}
	if r.StudentDivision != nil {
		m.StudentDivision = strings.ToUpper(strings.TrimSpace(*r.StudentDivision))
	}
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentUniversityID: m.StudentUniversityID,
		StudentRollNumber:   m.StudentRollNumber,
		StudentName:         m.StudentName,
		StudentEmail:        m.StudentEmail,
		StudentYear:         m.StudentYear,
		StudentSemester:     m.StudentSemester,
		StudentDivision:     m.StudentDivision,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
	}
}
