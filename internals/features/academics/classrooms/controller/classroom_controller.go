// file: internals/features/academics/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomDTO "campushub_backend/internals/features/academics/classrooms/dto"
	classroomModel "campushub_backend/internals/features/academics/classrooms/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type ClassroomsController struct {
	DB *gorm.DB
}

func NewClassroomsController(db *gorm.DB) *ClassroomsController {
	return &ClassroomsController{DB: db}
}

func (h *ClassroomsController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*classroomModel.ClassroomModel, error) {
	var m classroomModel.ClassroomModel
	err := tx.
		Where("classroom_id = ? AND classroom_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "classroom not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load classroom")
	}
	return &m, nil
}

func (h *ClassroomsController) nameTaken(tx *gorm.DB, universityID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	q := tx.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_university_id = ? AND lower(classroom_name) = lower(?)", universityID, name)
	if excludeID != uuid.Nil {
		q = q.Where("classroom_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "failed to check name duplication")
	}
	return cnt > 0, nil
}

/* =========================
   CREATE
   POST /admin/classrooms
   ========================= */

func (h *ClassroomsController) CreateClassroom(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req classroomDTO.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.ClassroomName = strings.TrimSpace(req.ClassroomName)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(universityID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := h.nameTaken(tx, universityID, m.ClassroomName, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "classroom name already in use")
		}
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "classroom name already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create classroom")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "classroom created", classroomDTO.FromClassroomModel(m))
}

/* =========================
   LIST
   GET /admin/classrooms
   ========================= */

func (h *ClassroomsController) ListClassrooms(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_university_id = ?", universityID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count classrooms")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []classroomModel.ClassroomModel
	if err := db.
		Order("classroom_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list classrooms")
	}

	out := make([]classroomDTO.ClassroomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, classroomDTO.FromClassroomModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/classrooms/:id
   ========================= */

func (h *ClassroomsController) GetClassroom(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", classroomDTO.FromClassroomModel(*m))
}

/* =========================
   UPDATE (partial)
   PATCH /admin/classrooms/:id
   ========================= */

func (h *ClassroomsController) UpdateClassroom(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req classroomDTO.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated classroomModel.ClassroomModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if req.ClassroomName != nil {
			taken, err := h.nameTaken(tx, universityID, strings.TrimSpace(*req.ClassroomName), id)
			if err != nil {
				return err
			}
			if taken {
				return fiber.NewError(fiber.StatusConflict, "classroom name already in use")
			}
		}
		req.Apply(m)
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update classroom")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "classroom updated", classroomDTO.FromClassroomModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/classrooms/:id
   Refused while any active timetable template references the room.
   ========================= */

func (h *ClassroomsController) DeleteClassroom(c *fiber.Ctx) error {
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

		var cnt int64
		if err := tx.Table("timetable_templates").
			Where("timetable_template_university_id = ? AND timetable_template_classroom_id = ? AND timetable_template_deleted_at IS NULL",
				universityID, id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check timetable references")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "classroom is still referenced by a timetable")
		}

		if err := tx.Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete classroom")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "classroom deleted", fiber.Map{"classroom_id": id})
}
