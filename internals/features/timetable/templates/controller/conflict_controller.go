// file: internals/features/timetable/templates/controller/conflict_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	ttDTO "campushub_backend/internals/features/timetable/templates/dto"
	"campushub_backend/internals/features/timetable/templates/schedule"
	ttService "campushub_backend/internals/features/timetable/templates/service"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

/* =========================
   Conflict-check endpoints.

   These expose the occupancy predicates for the front-end's
   optimistic hints (greying out occupied classrooms, warning
   on a drop). They are advisory: the authoritative check runs
   again inside the create/update/assign transactions.
   ========================= */

func (ctl *TimetableTemplateController) checkQuery(c *fiber.Ctx) (uuid.UUID, []ttService.TemplateSnapshot, error) {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return uuid.Nil, nil, err
	}
	editingID := uuid.Nil
	if raw := strings.TrimSpace(c.Query("editing_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "editing_id is not a valid uuid")
		}
		editingID = id
	}
	snapshot, err := loadSnapshot(ctl.DB, universityID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return editingID, snapshot, nil
}

func occupancyResult(c *fiber.Ctx, occupied bool, existing *ttService.TemplateSnapshot) error {
	body := fiber.Map{"occupied": occupied}
	if existing != nil {
		ref := ttDTO.ConflictRefFrom(*existing)
		body["existing"] = ref
		body["existing_label"] = existing.ScopeLabel()
	}
	return helper.JsonOK(c, "", body)
}

// GET /admin/timetable/conflicts/faculty?faculty_id=&day=&start=&end=[&editing_id=]
func (ctl *TimetableTemplateController) CheckFaculty(c *fiber.Ctx) error {
	editingID, snapshot, err := ctl.checkQuery(c)
	if err != nil {
		return err
	}
	facultyID, err := uuid.Parse(strings.TrimSpace(c.Query("faculty_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "faculty_id is not a valid uuid")
	}
	day := schedule.Weekday(strings.TrimSpace(c.Query("day")))
	if !schedule.ValidWeekday(day) {
		return fiber.NewError(fiber.StatusBadRequest, "day must be Monday..Saturday")
	}
	start, err := schedule.ParseClock(c.Query("start"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start invalid (HH:MM)")
	}
	end, err := schedule.ParseClock(c.Query("end"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "end invalid (HH:MM)")
	}

	occupied, existing := ttService.FacultyOccupied(snapshot, editingID, facultyID, day, start, end)
	return occupancyResult(c, occupied, existing)
}

// GET /admin/timetable/conflicts/classroom?classroom_id=[&editing_id=]
func (ctl *TimetableTemplateController) CheckClassroom(c *fiber.Ctx) error {
	editingID, snapshot, err := ctl.checkQuery(c)
	if err != nil {
		return err
	}
	classroomID, err := uuid.Parse(strings.TrimSpace(c.Query("classroom_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "classroom_id is not a valid uuid")
	}
	occupied, existing := ttService.ClassroomOccupied(snapshot, editingID, classroomID)
	return occupancyResult(c, occupied, existing)
}

// GET /admin/timetable/conflicts/class-teacher?faculty_id=[&editing_id=]
func (ctl *TimetableTemplateController) CheckClassTeacher(c *fiber.Ctx) error {
	editingID, snapshot, err := ctl.checkQuery(c)
	if err != nil {
		return err
	}
	facultyID, err := uuid.Parse(strings.TrimSpace(c.Query("faculty_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "faculty_id is not a valid uuid")
	}
	occupied, existing := ttService.ClassTeacherElsewhere(snapshot, editingID, facultyID)
	return occupancyResult(c, occupied, existing)
}
