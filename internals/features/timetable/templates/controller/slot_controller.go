// file: internals/features/timetable/templates/controller/slot_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ttDTO "campushub_backend/internals/features/timetable/templates/dto"
	ttModel "campushub_backend/internals/features/timetable/templates/model"
	"campushub_backend/internals/features/timetable/templates/schedule"
	ttService "campushub_backend/internals/features/timetable/templates/service"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

/* =========================
   ASSIGN
   POST /admin/timetable/:id/slots/assign
   ========================= */

// Assign applies one AssignToken to the stored grid. The faculty occupancy
// check runs in the same transaction as the write, so the stored grid never
// carries a double booking regardless of what the front-end checked.
func (ctl *TimetableTemplateController) Assign(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ttDTO.AssignSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.SubjectCode == nil && req.FacultyID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to assign: provide subject_code and/or faculty_id")
	}

	cmd := schedule.AssignToken{
		Day:       schedule.Weekday(strings.TrimSpace(req.Day)),
		SlotIndex: req.SlotIndex,
	}
	if req.SubjectCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.SubjectCode))
		cmd.SubjectCode = &code
		if req.SubjectType != nil {
			st := schedule.SubjectType(*req.SubjectType)
			cmd.SubjectType = &st
		}
	}
	var facultyID *uuid.UUID
	if req.FacultyID != nil {
		fid, err := uuid.Parse(strings.TrimSpace(*req.FacultyID))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "faculty_id is not a valid uuid")
		}
		facultyID = &fid
		cmd.FacultyID = &fid
	}

	var updated ttModel.TimetableTemplateModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		m, err := ctl.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		week, err := ttDTO.DecodeWeek(m.TimetableTemplateDays)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "corrupt day grid on template")
		}

		// faculty occupancy is checked before the grid is touched; a
		// conflict leaves the cell exactly as it was
		if facultyID != nil {
			cell, err := gridCell(week, cmd.Day, cmd.SlotIndex)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			snapshot, err := loadSnapshot(tx, universityID)
			if err != nil {
				return err
			}
			if ok, existing := ttService.FacultyOccupied(snapshot, id, *facultyID, cmd.Day, cell.Slot.Start, cell.Slot.End); ok {
				c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*existing))
				return fiber.NewError(fiber.StatusConflict,
					"faculty is already booked on "+string(cmd.Day)+" "+cell.Slot.Label()+" in "+existing.ScopeLabel())
			}
		}

		if err := schedule.Assign(week, cmd); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		days, err := ttDTO.EncodeWeek(week)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to encode day grid")
		}
		m.TimetableTemplateDays = days
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save assignment")
		}
		updated = *m
		return nil
	}); err != nil {
		return conflictOrError(c, err)
	}

	return helper.JsonUpdated(c, "slot assigned", ttDTO.FromTimetableTemplateModel(updated))
}

/* =========================
   UNASSIGN
   POST /admin/timetable/:id/slots/unassign
   ========================= */

func (ctl *TimetableTemplateController) Unassign(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ttDTO.UnassignSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated ttModel.TimetableTemplateModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		m, err := ctl.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		week, err := ttDTO.DecodeWeek(m.TimetableTemplateDays)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "corrupt day grid on template")
		}
		if err := schedule.Unassign(week, schedule.Weekday(strings.TrimSpace(req.Day)), req.SlotIndex, schedule.AssignField(req.Field)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		days, err := ttDTO.EncodeWeek(week)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to encode day grid")
		}
		m.TimetableTemplateDays = days
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save unassignment")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "slot cleared", ttDTO.FromTimetableTemplateModel(updated))
}

/* =========================
   BELL PREVIEW
   GET /admin/timetable/bell-preview
   ========================= */

// BellPreview runs the validated slot generator for arbitrary parameters so
// the configuration dialog and the inline controls share one code path.
func (ctl *TimetableTemplateController) BellPreview(c *fiber.Ctx) error {
	if _, err := helperAuth.GetUniversityIDFromToken(c); err != nil {
		return err
	}

	params := schedule.DefaultBellParams()
	var err error
	if v := strings.TrimSpace(c.Query("day_start")); v != "" {
		if params.DayStart, err = schedule.ParseClock(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if v := strings.TrimSpace(c.Query("day_end")); v != "" {
		if params.DayEnd, err = schedule.ParseClock(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if v := c.QueryInt("class_minutes", 0); v > 0 {
		params.ClassMinutes = v
	}
	if v := strings.TrimSpace(c.Query("interval_start")); v != "" {
		if params.IntervalStart, err = schedule.ParseClock(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if v := c.QueryInt("interval_minutes", 0); v > 0 {
		params.IntervalMinutes = v
	}
	if v := strings.TrimSpace(c.Query("lunch_start")); v != "" {
		if params.LunchStart, err = schedule.ParseClock(v); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if v := c.QueryInt("lunch_minutes", 0); v > 0 {
		params.LunchMinutes = v
	}

	slots, err := schedule.GenerateSlots(params)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	out := make([]fiber.Map, 0, len(slots))
	for _, s := range slots {
		out = append(out, fiber.Map{
			"time":      s.Label(),
			"kind":      string(s.Kind),
			"startTime": s.Start.String(),
			"endTime":   s.End.String(),
		})
	}
	return helper.JsonOK(c, "", fiber.Map{
		"interval_end": params.IntervalEnd().String(),
		"lunch_end":    params.LunchEnd().String(),
		"slots":        out,
	})
}

/* =========================
   Internal
   ========================= */

func gridCell(week []schedule.DaySchedule, day schedule.Weekday, idx int) (*schedule.SlotAssignment, error) {
	for i := range week {
		if week[i].Day == day {
			if idx < 0 || idx >= len(week[i].Slots) {
				return nil, errors.New("slot index out of range for " + string(day))
			}
			return &week[i].Slots[idx], nil
		}
	}
	return nil, errors.New("unknown day " + string(day))
}
