// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "campushub_backend/internals/features/academics/students/dto"
	studentModel "campushub_backend/internals/features/academics/students/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type StudentsController struct {
	DB *gorm.DB
}

func NewStudentsController(db *gorm.DB) *StudentsController {
	return &StudentsController{DB: db}
}

func (h *StudentsController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	err := tx.
		Where("student_id = ? AND student_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load student")
	}
	return &m, nil
}

func (h *StudentsController) rollTaken(tx *gorm.DB, universityID uuid.UUID, roll string, excludeID uuid.UUID) (bool, error) {
	q := tx.Model(&studentModel.StudentModel{}).
		Where("student_university_id = ? AND lower(student_roll_number) = lower(?)", universityID, roll)
	if excludeID != uuid.Nil {
		q = q.Where("student_id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "failed to check roll number duplication")
	}
	return cnt > 0, nil
}

/* =========================
   CREATE
   POST /admin/students
   ========================= */

func (h *StudentsController) CreateStudent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.StudentRollNumber = strings.TrimSpace(req.StudentRollNumber)
	req.StudentName = strings.TrimSpace(req.StudentName)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(universityID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := h.rollTaken(tx, universityID, m.StudentRollNumber, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, "roll number already in use")
		}
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "roll number already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create student")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "student created", studentDTO.FromStudentModel(m))
}

/* =========================
   LIST
   GET /admin/students?year=&semester=&division=&q=
   Division filter is the attendance-marking view.
   ========================= */

func (h *StudentsController) ListStudents(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_university_id = ?", universityID)

	if y := strings.TrimSpace(c.Query("year")); y != "" {
		db = db.Where("student_year = ?", y)
	}
	if s := strings.TrimSpace(c.Query("semester")); s != "" {
		db = db.Where("student_semester = ?", s)
	}
	if d := strings.TrimSpace(c.Query("division")); d != "" {
		db = db.Where("student_division = ?", strings.ToUpper(d))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("lower(student_name) LIKE ? OR lower(student_roll_number) LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	paging := helper.ResolvePaging(c, 100, 500)
	var rows []studentModel.StudentModel
	if err := db.
		Order("student_roll_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	out := make([]studentDTO.StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, studentDTO.FromStudentModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/students/:id
   ========================= */

func (h *StudentsController) GetStudent(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", studentDTO.FromStudentModel(*m))
}

/* =========================
   UPDATE (partial)
   PATCH /admin/students/:id
   ========================= */

func (h *StudentsController) UpdateStudent(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated studentModel.StudentModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if req.StudentRollNumber != nil {
			taken, err := h.rollTaken(tx, universityID, strings.TrimSpace(*req.StudentRollNumber), id)
			if err != nil {
				return err
			}
			if taken {
				return fiber.NewError(fiber.StatusConflict, "roll number already in use")
			}
		}
		req.Apply(m)
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update student")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "student updated", studentDTO.FromStudentModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/students/:id
   ========================= */

func (h *StudentsController) DeleteStudent(c *fiber.Ctx) error {
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
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete student")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
