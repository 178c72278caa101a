// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "campushub_backend/internals/features/academics/subjects/dto"
	subjectModel "campushub_backend/internals/features/academics/subjects/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type SubjectsController struct {
	DB *gorm.DB
}

func NewSubjectsController(db *gorm.DB) *SubjectsController {
	return &SubjectsController{DB: db}
}

func (h *SubjectsController) findOwned(tx *gorm.DB, universityID, id uuid.UUID) (*subjectModel.SubjectModel, error) {
	var m subjectModel.SubjectModel
	err := tx.
		Where("subject_id = ? AND subject_university_id = ?", id, universityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "subject not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load subject")
	}
	return &m, nil
}

/* =========================
   CREATE
   POST /admin/subjects
   ========================= */

func (h *SubjectsController) CreateSubject(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.SubjectCode = strings.TrimSpace(req.SubjectCode)
	req.SubjectName = strings.TrimSpace(req.SubjectName)
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(universityID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// duplicate code per university, ignoring soft-deleted rows
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_university_id = ? AND lower(subject_code) = lower(?)", universityID, m.SubjectCode).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check code duplication")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "subject code already in use")
		}
		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "subject code already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create subject")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "subject created", subjectDTO.FromSubjectModel(m))
}

/* =========================
   LIST
   GET /admin/subjects?year=&semester=&archived=
   ========================= */

func (h *SubjectsController) ListSubjects(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_university_id = ?", universityID)

	if y := strings.TrimSpace(c.Query("year")); y != "" {
		db = db.Where("subject_year = ?", y)
	}
	if s := strings.TrimSpace(c.Query("semester")); s != "" {
		db = db.Where("subject_semester = ?", s)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("archived"))) {
	case "true":
		db = db.Where("subject_is_archived = TRUE")
	case "", "false":
		db = db.Where("subject_is_archived = FALSE")
	case "all":
		// no filter
	default:
		return fiber.NewError(fiber.StatusBadRequest, "archived must be true, false or all")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count subjects")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []subjectModel.SubjectModel
	if err := db.
		Order("subject_year ASC, subject_semester ASC, subject_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list subjects")
	}

	out := make([]subjectDTO.SubjectResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, subjectDTO.FromSubjectModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID
   GET /admin/subjects/:id
   ========================= */

func (h *SubjectsController) GetSubject(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", subjectDTO.FromSubjectModel(*m))
}

/* =========================
   UPDATE (partial)
   PATCH /admin/subjects/:id
   ========================= */

func (h *SubjectsController) UpdateSubject(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if req.SubjectCode != nil {
			var cnt int64
			if err := tx.Model(&subjectModel.SubjectModel{}).
				Where("subject_university_id = ? AND lower(subject_code) = lower(?) AND subject_id <> ?",
					universityID, strings.TrimSpace(*req.SubjectCode), id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to check code duplication")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "subject code already in use")
			}
		}
		req.Apply(m)
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update subject")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "subject updated", subjectDTO.FromSubjectModel(updated))
}

/* =========================
   ARCHIVE / RESTORE
   POST /admin/subjects/:id/archive
   POST /admin/subjects/:id/restore
   ========================= */

func (h *SubjectsController) ArchiveSubject(c *fiber.Ctx) error {
	return h.setArchived(c, true, "subject archived", "subject is already archived")
}

func (h *SubjectsController) RestoreSubject(c *fiber.Ctx) error {
	return h.setArchived(c, false, "subject restored", "subject is not archived")
}

func (h *SubjectsController) setArchived(c *fiber.Ctx, archived bool, okMsg, wrongStateMsg string) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var updated subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id)
		if err != nil {
			return err
		}
		if m.SubjectIsArchived == archived {
			return fiber.NewError(fiber.StatusConflict, wrongStateMsg)
		}
		m.SubjectIsArchived = archived
		if archived {
			now := time.Now().UTC()
			m.SubjectArchivedAt = &now
		} else {
			m.SubjectArchivedAt = nil
		}
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to change archive state")
		}
		updated = *m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, okMsg, subjectDTO.FromSubjectModel(updated))
}

/* =========================
   DELETE
   DELETE /admin/subjects/:id
   ========================= */

func (h *SubjectsController) DeleteSubject(c *fiber.Ctx) error {
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
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete subject")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"subject_id": id})
}
