// file: internals/features/timetable/templates/controller/timetable_template_controller.go
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

type TimetableTemplateController struct {
	DB *gorm.DB
}

func NewTimetableTemplateController(db *gorm.DB) *TimetableTemplateController {
	return &TimetableTemplateController{DB: db}
}

/* =========================
   Snapshot loading
   ========================= */

// loadSnapshot reads every active template of the university inside the
// caller's transaction, so conflict checks and the subsequent write are
// one atomic unit.
func loadSnapshot(tx *gorm.DB, universityID uuid.UUID) ([]ttService.TemplateSnapshot, error) {
	var rows []ttModel.TimetableTemplateModel
	if err := tx.
		Where("timetable_template_university_id = ?", universityID).
		Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load timetable snapshot")
	}
	snapshot := make([]ttService.TemplateSnapshot, 0, len(rows))
	for _, r := range rows {
		week, err := ttDTO.DecodeWeek(r.TimetableTemplateDays)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "corrupt day grid on template "+r.TimetableTemplateID.String())
		}
		snapshot = append(snapshot, ttService.TemplateSnapshot{
			ID:             r.TimetableTemplateID,
			Year:           r.TimetableTemplateYear,
			Semester:       r.TimetableTemplateSemester,
			Division:       r.TimetableTemplateDivision,
			ClassroomID:    r.TimetableTemplateClassroomID,
			ClassTeacherID: r.TimetableTemplateClassTeacherID,
			Days:           week,
		})
	}
	return snapshot, nil
}

func (ctl *TimetableTemplateController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*ttModel.TimetableTemplateModel, error) {
	var m ttModel.TimetableTemplateModel
	err := tx.
		Where("timetable_template_id = ? AND timetable_template_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "timetable template not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load timetable template")
	}
	return &m, nil
}

/* =========================
   LIST
   GET /admin/timetable/list
   ========================= */

func (ctl *TimetableTemplateController) List(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&ttModel.TimetableTemplateModel{}).
		Where("timetable_template_university_id = ?", universityID)

	if y := strings.TrimSpace(c.Query("year")); y != "" {
		if !ttModel.ValidAcademicYear(ttModel.AcademicYear(y)) {
			return fiber.NewError(fiber.StatusBadRequest, "year must be First, Second or Third")
		}
		db = db.Where("timetable_template_year = ?", y)
	}
	if s := strings.TrimSpace(c.Query("semester")); s != "" {
		db = db.Where("timetable_template_semester = ?", s)
	}
	if d := strings.TrimSpace(c.Query("division")); d != "" {
		db = db.Where("lower(timetable_template_division) = lower(?)", d)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		if st != string(ttModel.StatusDraft) && st != string(ttModel.StatusPublished) {
			return fiber.NewError(fiber.StatusBadRequest, "status must be draft or published")
		}
		db = db.Where("timetable_template_status = ?", st)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count timetable templates")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []ttModel.TimetableTemplateModel
	if err := db.
		Order("timetable_template_year ASC, timetable_template_semester ASC, timetable_template_division ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list timetable templates")
	}

	out := make([]ttDTO.TimetableTemplateResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ttDTO.FromTimetableTemplateModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/timetable/:id
   ========================= */

func (ctl *TimetableTemplateController) GetByID(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.findOwned(ctl.DB, universityID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", ttDTO.FromTimetableTemplateModel(*m))
}

/* =========================
   CREATE
   POST /admin/timetable/create
   ========================= */

func (ctl *TimetableTemplateController) Create(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req ttDTO.CreateTimetableTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.TimetableTemplateDivision = strings.ToUpper(strings.TrimSpace(req.TimetableTemplateDivision))
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	params, err := req.BellParams()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	// Uniform validation: the same checked generator serves the quick
	// inline recompute and the full configuration dialog.
	week, err := schedule.BuildWeek(params)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	days, err := ttDTO.EncodeWeek(week)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to encode day grid")
	}

	var created ttModel.TimetableTemplateModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		snapshot, err := loadSnapshot(tx, universityID)
		if err != nil {
			return err
		}

		// duplicate scope key → let the front-end offer view/discard
		if dup := ttService.FindDuplicate(snapshot, uuid.Nil, req.TimetableTemplateYear, req.TimetableTemplateSemester, req.TimetableTemplateDivision); dup != nil {
			c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*dup))
			return fiber.NewError(fiber.StatusConflict, "a timetable for this year, semester and division already exists")
		}
		if ok, existing := ttService.ClassroomOccupied(snapshot, uuid.Nil, req.TimetableTemplateClassroomID); ok {
			c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*existing))
			return fiber.NewError(fiber.StatusConflict, "classroom already assigned to "+existing.ScopeLabel())
		}
		if req.TimetableTemplateClassTeacherID != nil {
			if ok, existing := ttService.ClassTeacherElsewhere(snapshot, uuid.Nil, *req.TimetableTemplateClassTeacherID); ok {
				c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*existing))
				return fiber.NewError(fiber.StatusConflict, "faculty is already class teacher of "+existing.ScopeLabel())
			}
		}

		created = ttModel.TimetableTemplateModel{
			TimetableTemplateUniversityID:   universityID,
			TimetableTemplateYear:           req.TimetableTemplateYear,
			TimetableTemplateSemester:       req.TimetableTemplateSemester,
			TimetableTemplateDivision:       req.TimetableTemplateDivision,
			TimetableTemplateClassroomID:    req.TimetableTemplateClassroomID,
			TimetableTemplateClassTeacherID: req.TimetableTemplateClassTeacherID,
			TimetableTemplateDays:           days,
			TimetableTemplateStatus:         ttModel.StatusDraft,
		}
		ttDTO.ApplyBellParams(&created, params)

		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "a conflicting timetable was saved concurrently")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create timetable template")
		}
		return nil
	}); err != nil {
		return conflictOrError(c, err)
	}

	return helper.JsonCreated(c, "timetable template created", ttDTO.FromTimetableTemplateModel(created))
}

/* =========================
   UPDATE (full replace)
   PUT /admin/timetable/:id
   ========================= */

func (ctl *TimetableTemplateController) Update(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ttDTO.UpdateTimetableTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.TimetableTemplateDivision = strings.ToUpper(strings.TrimSpace(req.TimetableTemplateDivision))
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	params, err := req.BellParams()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := params.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	week, err := ttDTO.DecodeWireDays(req.TimetableTemplateDays)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validateGridShape(params, week); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	days, err := ttDTO.EncodeWeek(week)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to encode day grid")
	}

	var updated ttModel.TimetableTemplateModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		m, err := ctl.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}

		snapshot, err := loadSnapshot(tx, universityID)
		if err != nil {
			return err
		}
		if dup := ttService.FindDuplicate(snapshot, id, req.TimetableTemplateYear, req.TimetableTemplateSemester, req.TimetableTemplateDivision); dup != nil {
			c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*dup))
			return fiber.NewError(fiber.StatusConflict, "a timetable for this year, semester and division already exists")
		}
		if ok, existing := ttService.ClassroomOccupied(snapshot, id, req.TimetableTemplateClassroomID); ok {
			c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*existing))
			return fiber.NewError(fiber.StatusConflict, "classroom already assigned to "+existing.ScopeLabel())
		}
		if req.TimetableTemplateClassTeacherID != nil {
			if ok, existing := ttService.ClassTeacherElsewhere(snapshot, id, *req.TimetableTemplateClassTeacherID); ok {
				c.Locals("conflict_ref", ttDTO.ConflictRefFrom(*existing))
				return fiber.NewError(fiber.StatusConflict, "faculty is already class teacher of "+existing.ScopeLabel())
			}
		}
		// The whole grid is re-checked at save; a grid assembled against a
		// stale snapshot cannot carry a double-booked faculty into storage.
		if gc := ttService.FacultyGridConflict(snapshot, id, week); gc != nil {
			c.Locals("conflict_ref", ttDTO.ConflictRefFrom(gc.Existing))
			return fiber.NewError(fiber.StatusConflict,
				"faculty is already booked on "+string(gc.Day)+" "+gc.Slot.Label()+" in "+gc.Existing.ScopeLabel())
		}

		m.TimetableTemplateYear = req.TimetableTemplateYear
		m.TimetableTemplateSemester = req.TimetableTemplateSemester
		m.TimetableTemplateDivision = req.TimetableTemplateDivision
		m.TimetableTemplateClassroomID = req.TimetableTemplateClassroomID
		m.TimetableTemplateClassTeacherID = req.TimetableTemplateClassTeacherID
		m.TimetableTemplateDays = days
		ttDTO.ApplyBellParams(m, params)

		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update timetable template")
		}
		updated = *m
		return nil
	}); err != nil {
		return conflictOrError(c, err)
	}

	return helper.JsonUpdated(c, "timetable template updated", ttDTO.FromTimetableTemplateModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/timetable/:id
   ========================= */

func (ctl *TimetableTemplateController) Delete(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		m, err := ctl.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete timetable template")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "timetable template deleted", fiber.Map{"timetable_template_id": id})
}

/* =========================
   Internal
   ========================= */

// conflictOrError renders 409s with the conflicting template ref attached,
// everything else through the plain error envelope.
func conflictOrError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusConflict {
		return helper.JsonConflict(c, fe.Message, c.Locals("conflict_ref"))
	}
	return helper.FromFiberError(c, err)
}

// validateGridShape checks a submitted grid against the slots its own bell
// parameters generate: same days, same slot count, identical kinds and time
// ranges, and no assignment parked on an interval or lunch row.
func validateGridShape(params schedule.BellParams, week []schedule.DaySchedule) error {
	expected, err := schedule.GenerateSlots(params)
	if err != nil {
		return err
	}
	if len(week) != len(schedule.Weekdays) {
		return errors.New("day grid must cover Monday through Saturday")
	}
	seen := map[schedule.Weekday]bool{}
	for _, d := range week {
		if seen[d.Day] {
			return errors.New("duplicate day " + string(d.Day) + " in grid")
		}
		seen[d.Day] = true
		if len(d.Slots) != len(expected) {
			return errors.New("slot count mismatch on " + string(d.Day))
		}
		for i, a := range d.Slots {
			exp := expected[i]
			if a.Slot.Kind != exp.Kind || a.Slot.Start != exp.Start || a.Slot.End != exp.End {
				return errors.New("slot " + a.Slot.Label() + " on " + string(d.Day) + " does not match the bell schedule")
			}
			if exp.Kind != schedule.KindClass && (a.SubjectCode != "" || a.FacultyID != nil) {
				return errors.New("interval and lunch slots cannot hold assignments")
			}
		}
	}
	return nil
}
