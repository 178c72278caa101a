// file: internals/features/academics/faculty/controller/faculty_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyDTO "campushub_backend/internals/features/academics/faculty/dto"
	facultyModel "campushub_backend/internals/features/academics/faculty/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

func (h *FacultyController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*facultyModel.FacultyModel, error) {
	var m facultyModel.FacultyModel
	err := tx.
		Where("faculty_id = ? AND faculty_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "faculty member not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load faculty member")
	}
	return &m, nil
}

func (h *FacultyController) emailTaken(tx *gorm.DB, universityID uuid.UUID, email string, excludeID uuid.UUID) (bool, error) {
	q := tx.Model(&facultyModel.FacultyModel{}).
		Where("faculty_university_id = ? AND lower(faculty_email) = lower(?)", universityID, email)
	if excludeID != uuid.Nil {
		q = q.Where("faculty_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "failed to check email duplication")
	}
	return cnt > 0, nil
}

/* =========================
   CREATE
   POST /admin/faculty
   ========================= */

func (h *FacultyController) CreateFaculty(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req facultyDTO.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.FacultyName = strings.TrimSpace(req.FacultyName)
	req.FacultyEmail = strings.TrimSpace(req.FacultyEmail)
	req.FacultyDepartment = strings.TrimSpace(req.FacultyDepartment)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(universityID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := h.emailTaken(tx, universityID, m.FacultyEmail, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "faculty email already in use")
		}
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "faculty email already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create faculty member")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "faculty member created", facultyDTO.FromFacultyModel(m))
}

/* =========================
   LIST
   GET /admin/faculty?department=&q=
   ========================= */

func (h *FacultyController) ListFaculty(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&facultyModel.FacultyModel{}).
		Where("faculty_university_id = ?", universityID)

	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		db = db.Where("lower(faculty_department) = lower(?)", dep)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("lower(faculty_name) LIKE ? OR lower(faculty_email) LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count faculty")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []facultyModel.FacultyModel
	if err := db.
		Order("faculty_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list faculty")
	}

	out := make([]facultyDTO.FacultyResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, facultyDTO.FromFacultyModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/faculty/:id
   ========================= */

func (h *FacultyController) GetFaculty(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", facultyDTO.FromFacultyModel(*m))
}

/* =========================
   UPDATE (partial)
   PATCH /admin/faculty/:id
   ========================= */

func (h *FacultyController) UpdateFaculty(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req facultyDTO.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated facultyModel.FacultyModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if req.FacultyEmail != nil {
			taken, err := h.emailTaken(tx, universityID, strings.TrimSpace(*req.FacultyEmail), id)
			if err != nil {
				return err
			}
			if taken {
				return fiber.NewError(fiber.StatusConflict, "faculty email already in use")
			}
		}
		req.Apply(m)
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update faculty member")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "faculty member updated", facultyDTO.FromFacultyModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/faculty/:id
   Refused while the member is still assigned anywhere on a timetable.
   ========================= */

func (h *FacultyController) DeleteFaculty(c *fiber.Ctx) error {
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

		// Still referenced as a class teacher or inside a stored grid?
		var cnt int64
		if err := tx.Table("timetable_templates").
			Where("timetable_template_university_id = ? AND timetable_template_deleted_at IS NULL", universityID).
			Where("timetable_template_class_teacher_id = ? OR timetable_template_days::text LIKE ?",
				id, "%"+id.String()+"%").
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check timetable references")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "faculty member is still referenced by a timetable")
		}

		if err := tx.Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete faculty member")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "faculty member deleted", fiber.Map{"faculty_id": id})
}
