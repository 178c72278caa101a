// file: internals/features/events/calendar/controller/calendar_event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	calendarDTO "campushub_backend/internals/features/events/calendar/dto"
	calendarModel "campushub_backend/internals/features/events/calendar/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type CalendarEventsController struct {
	DB *gorm.DB
}

func NewCalendarEventsController(db *gorm.DB) *CalendarEventsController {
	return &CalendarEventsController{DB: db}
}

func (h *CalendarEventsController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*calendarModel.CalendarEventModel, error) {
	var m calendarModel.CalendarEventModel
	err := tx.
		Where("calendar_event_id = ? AND calendar_event_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "calendar event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load calendar event")
	}
	return &m, nil
}

/* =========================
   CREATE
   POST /admin/calendar
   ========================= */

func (h *CalendarEventsController) CreateEvent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req calendarDTO.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel(universityID)
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create calendar event")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "calendar event created", calendarDTO.FromCalendarEventModel(m))
}

/* =========================
   LIST
   GET /admin/calendar?month=YYYY-MM | from=&to= | category=
   An event is listed when its [start, end] range touches the window.
   ========================= */

func (h *CalendarEventsController) ListEvents(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&calendarModel.CalendarEventModel{}).
		Where("calendar_event_university_id = ?", universityID)

	if month := strings.TrimSpace(c.Query("month")); month != "" {
		first, err := time.Parse("2006-01", month)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month invalid (YYYY-MM)")
		}
		last := first.AddDate(0, 1, -1)
		db = db.Where("calendar_event_start_date <= ? AND calendar_event_end_date >= ?", last, first)
	} else {
		from, err := helper.ParseDateQuery(c, "from")
		if err != nil {
			return err
		}
		to, err := helper.ParseDateQuery(c, "to")
		if err != nil {
			return err
		}
		if !from.IsZero() {
			db = db.Where("calendar_event_end_date >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("calendar_event_start_date <= ?", to)
		}
	}

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		if !calendarModel.ValidEventCategory(calendarModel.EventCategory(strings.ToLower(cat))) {
			return fiber.NewError(fiber.StatusBadRequest, "category must be holiday, exam, event or deadline")
		}
		db = db.Where("calendar_event_category = ?", strings.ToLower(cat))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count calendar events")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []calendarModel.CalendarEventModel
	if err := db.
		Order("calendar_event_start_date ASC, calendar_event_title ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list calendar events")
	}

	out := make([]calendarDTO.CalendarEventResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, calendarDTO.FromCalendarEventModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/calendar/:id
   ========================= */

func (h *CalendarEventsController) GetEvent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findOwned(h.DB, universityID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", calendarDTO.FromCalendarEventModel(*m))
}

/* =========================
   UPDATE (partial)
   PATCH /admin/calendar/:id
   ========================= */

func (h *CalendarEventsController) UpdateEvent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req calendarDTO.UpdateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated calendarModel.CalendarEventModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if err := req.Apply(m); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update calendar event")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "calendar event updated", calendarDTO.FromCalendarEventModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/calendar/:id
   ========================= */

func (h *CalendarEventsController) DeleteEvent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete calendar event")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "calendar event deleted", fiber.Map{"calendar_event_id": id})
}
