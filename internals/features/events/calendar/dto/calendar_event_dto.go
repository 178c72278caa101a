// file: internals/features/events/calendar/dto/calendar_event_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"campushub_backend/internals/features/events/calendar/model"
)

/* ========== REQUEST DTOs ========== */

type CreateCalendarEventRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Category    string   `json:"category" validate:"required,oneof=holiday exam event deadline"`
	StartDate   string   `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate     string   `json:"end_date" validate:"required"`   // YYYY-MM-DD
	Audience    []string `json:"audience" validate:"required,min=1,dive,oneof=student faculty all"`
}

type UpdateCalendarEventRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Category    *string  `json:"category" validate:"omitempty,oneof=holiday exam event deadline"`
	StartDate   *string  `json:"start_date" validate:"omitempty"`
	EndDate     *string  `json:"end_date" validate:"omitempty"`
	Audience    []string `json:"audience" validate:"omitempty,min=1,dive,oneof=student faculty all"`
}

/* ========== RESPONSE DTO ========== */

type CalendarEventResponse struct {
	CalendarEventID uuid.UUID `json:"calendar_event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Audience        []string  `json:"audience"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

/* ========== HELPERS ========== */

func parseDate(field, raw string) (time.Time, error) {
	dt, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, field+" invalid (YYYY-MM-DD)")
	}
	return dt, nil
}

// normalizeAudience lowercases entries and collapses "all" to a single value.
func normalizeAudience(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "all" {
			return pq.StringArray{"all"}
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

/* ========== MAPPERS ========== */

func (r CreateCalendarEventRequest) ToModel(universityID uuid.UUID) (model.CalendarEventModel, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return model.CalendarEventModel{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return model.CalendarEventModel{}, err
	}
	if end.Before(start) {
		return model.CalendarEventModel{}, fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")
	}
	return model.CalendarEventModel{
		CalendarEventUniversityID: universityID,
		CalendarEventTitle:        strings.TrimSpace(r.Title),
		CalendarEventDescription:  strings.TrimSpace(r.Description),
		CalendarEventCategory:     model.EventCategory(r.Category),
		CalendarEventStartDate:    start,
		CalendarEventEndDate:      end,
		CalendarEventAudience:     normalizeAudience(r.Audience),
	}, nil
}

func (r UpdateCalendarEventRequest) Apply(m *model.CalendarEventModel) error {
	if r.Title != nil {
		m.CalendarEventTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.CalendarEventDescription = strings.TrimSpace(*r.Description)
	}
	if r.Category != nil {
		m.CalendarEventCategory = model.EventCategory(*r.Category)
	}
	if r.StartDate != nil {
		start, err := parseDate("start_date", *r.StartDate)
		if err != nil {
			return err
		}
		m.CalendarEventStartDate = start
	}
	if r.EndDate != nil {
		end, err := parseDate("end_date", *r.EndDate)
		if err != nil {
			return err
		}
		m.CalendarEventEndDate = end
	}
	if m.CalendarEventEndDate.Before(m.CalendarEventStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")
	}
	if len(r.Audience) > 0 {
		m.CalendarEventAudience = normalizeAudience(r.Audience)
	}
	return nil
}

func FromCalendarEventModel(m model.CalendarEventModel) CalendarEventResponse {
	audience := []string(m.CalendarEventAudience)
	if audience == nil {
		audience = []string{}
	}
	return CalendarEventResponse{
		CalendarEventID: m.CalendarEventID,
		Title:           m.CalendarEventTitle,
		Description:     m.CalendarEventDescription,
		Category:        string(m.CalendarEventCategory),
		StartDate:       m.CalendarEventStartDate.Format("2006-01-02"),
		EndDate:         m.CalendarEventEndDate.Format("2006-01-02"),
		Audience:        audience,
		CreatedAt:       m.CalendarEventCreatedAt,
		UpdatedAt:       m.CalendarEventUpdatedAt,
	}
}
