// file: internals/features/timetable/templates/controller/publish_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttDTO "campushub_backend/internals/features/timetable/templates/dto"
	ttModel "campushub_backend/internals/features/timetable/templates/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

/* =========================
   Status machine: draft ⇄ published.
   The stored status flips only when the write succeeds; a
   failed transaction leaves it untouched.
   ========================= */

// POST /admin/timetable/:id/publish
func (ctl *TimetableTemplateController) Publish(c *fiber.Ctx) error {
	return ctl.transition(c, ttModel.StatusDraft, ttModel.StatusPublished,
		"timetable template published", "template is already published")
}

// POST /admin/timetable/:id/unpublish
func (ctl *TimetableTemplateController) Unpublish(c *fiber.Ctx) error {
	return ctl.transition(c, ttModel.StatusPublished, ttModel.StatusDraft,
		"timetable template unpublished", "template is not published")
}

func (ctl *TimetableTemplateController) transition(c *fiber.Ctx, from, to ttModel.TemplateStatus, okMsg, wrongStateMsg string) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var updated ttModel.TimetableTemplateModel
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		m, err := ctl.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if m.TimetableTemplateStatus != from {
			return fiber.NewError(fiber.StatusConflict, wrongStateMsg)
		}
		m.TimetableTemplateStatus = to
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to change template status")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, okMsg, ttDTO.FromTimetableTemplateModel(updated))
}
