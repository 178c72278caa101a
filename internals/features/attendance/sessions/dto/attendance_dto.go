// file: internals/features/attendance/sessions/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/features/attendance/sessions/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
)

/* ========== REQUEST DTOs ========== */

type CreateRecordRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late"`
}

type CreateAttendanceSessionRequest struct {
	Year        string                `json:"year" validate:"required,oneof=First Second Third"`
	Semester    int                   `json:"semester" validate:"required,min=1,max=6"`
	Division    string                `json:"division" validate:"required,max=10"`
	Date        string                `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime   string                `json:"start_time" validate:"required"`
	EndTime     string                `json:"end_time" validate:"required"`
	SubjectCode string                `json:"subject_code" validate:"required,max=32"`
	FacultyID   uuid.UUID             `json:"faculty_id" validate:"required"`
	Records     []CreateRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// Resolve parses the raw date and clock strings after tag validation.
func (r CreateAttendanceSessionRequest) Resolve() (time.Time, schedule.LocalTime, schedule.LocalTime, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, "date invalid (YYYY-MM-DD)")
	}
	start, err := schedule.ParseClock(r.StartTime)
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, "start_time invalid (HH:MM)")
	}
	end, err := schedule.ParseClock(r.EndTime)
	if err != nil {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, "end_time invalid (HH:MM)")
	}
	if !start.Before(end) {
		return time.Time{}, 0, 0, fiber.NewError(fiber.StatusBadRequest, "start_time must be before end_time")
	}
	return date, start, end, nil
}

type UpdateRecordRequest struct {
	Status string `json:"status" validate:"required,oneof=present absent late"`
}

/* ========== RESPONSE DTOs ========== */

type AttendanceRecordResponse struct {
	AttendanceRecordID uuid.UUID              `json:"attendance_record_id"`
	StudentID          uuid.UUID              `json:"student_id"`
	Status             model.AttendanceStatus `json:"status"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type AttendanceSessionResponse struct {
	AttendanceSessionID uuid.UUID                  `json:"attendance_session_id"`
	Year                string                     `json:"year"`
	Semester            int                        `json:"semester"`
	Division            string                     `json:"division"`
	Date                string                     `json:"date"`
	StartTime           string                     `json:"start_time"`
	EndTime             string                     `json:"end_time"`
	SubjectCode         string                     `json:"subject_code"`
	FacultyID           uuid.UUID                  `json:"faculty_id"`
	CreatedAt           time.Time                  `json:"created_at"`
	Records             []AttendanceRecordResponse `json:"records,omitempty"`
}

type AttendanceSummaryResponse struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id"`
	Present             int       `json:"present"`
	Absent              int       `json:"absent"`
	Late                int       `json:"late"`
	Total               int       `json:"total"`
}

/* ========== MAPPERS ========== */

func (r CreateAttendanceSessionRequest) ToModel(universityID uuid.UUID, date time.Time) model.AttendanceSessionModel {
	m := model.AttendanceSessionModel{
		AttendanceSessionUniversityID: universityID,
		AttendanceSessionYear:         r.Year,
		AttendanceSessionSemester:     r.Semester,
		AttendanceSessionDivision:     strings.ToUpper(strings.TrimSpace(r.Division)),
		AttendanceSessionDate:         date,
		AttendanceSessionStartTime:    strings.TrimSpace(r.StartTime),
		AttendanceSessionEndTime:      strings.TrimSpace(r.EndTime),
		AttendanceSessionSubjectCode:  strings.TrimSpace(r.SubjectCode),
		AttendanceSessionFacultyID:    r.FacultyID,
	}
	for _, rec := range r.Records {
		m.Records = append(m.Records, model.AttendanceRecordModel{
			AttendanceRecordStudentID: rec.StudentID,
			AttendanceRecordStatus:    model.AttendanceStatus(rec.Status),
		})
	}
	return m
}

func FromAttendanceRecordModel(m model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID: m.AttendanceRecordID,
		StudentID:          m.AttendanceRecordStudentID,
		Status:             m.AttendanceRecordStatus,
		UpdatedAt:          m.AttendanceRecordUpdatedAt,
	}
}

func FromAttendanceSessionModel(m model.AttendanceSessionModel) AttendanceSessionResponse {
	resp := AttendanceSessionResponse{
		AttendanceSessionID: m.AttendanceSessionID,
		Year:                m.AttendanceSessionYear,
		Semester:            m.AttendanceSessionSemester,
		Division:            m.AttendanceSessionDivision,
		Date:                m.AttendanceSessionDate.Format("2006-01-02"),
		StartTime:           m.AttendanceSessionStartTime,
		EndTime:             m.AttendanceSessionEndTime,
		SubjectCode:         m.AttendanceSessionSubjectCode,
		FacultyID:           m.AttendanceSessionFacultyID,
		CreatedAt:           m.AttendanceSessionCreatedAt,
	}
	for _, rec := range m.Records {
		resp.Records = append(resp.Records, FromAttendanceRecordModel(rec))
	}
	return resp
}

func SummaryFrom(sessionID uuid.UUID, records []model.AttendanceRecordModel) AttendanceSummaryResponse {
	s := AttendanceSummaryResponse{AttendanceSessionID: sessionID, Total: len(records)}
	for _, rec := range records {
		switch rec.AttendanceRecordStatus {
		case model.AttendancePresent:
			s.Present++
		case model.AttendanceAbsent:
			s.Absent++
		case model.AttendanceLate:
			s.Late++
		}
	}
	return s
}
