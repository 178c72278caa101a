// file: internals/features/attendance/sessions/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "campushub_backend/internals/features/attendance/sessions/dto"
	attendanceModel "campushub_backend/internals/features/attendance/sessions/model"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func (h *AttendanceController) findOwned(tx *gorm.DB, universityID, id uuid.UUID, withRecords bool) (*attendanceModel.AttendanceSessionModel, error) {
	q := tx.Where("attendance_session_id = ? AND attendance_session_university_id = ?", id, universityID)
	if withRecords {
		q = q.Preload("Records")
	}
	var m attendanceModel.AttendanceSessionModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "attendance session not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load attendance session")
	}
	return &m, nil
}

/* =========================
   CREATE (session + records in one transaction)
   POST /admin/attendance
   ========================= */

func (h *AttendanceController) CreateSession(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.CreateAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	date, _, _, err := req.Resolve()
	if err != nil {
		return err
	}

	// one mark per student per session
	seen := make(map[uuid.UUID]struct{}, len(req.Records))
	for _, rec := range req.Records {
		if _, dup := seen[rec.StudentID]; dup {
			return fiber.NewError(fiber.StatusBadRequest, "duplicate student in records")
		}
		seen[rec.StudentID] = struct{}{}
	}

	m := req.ToModel(universityID, date)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// one session per (division scope, date, slot)
		var cnt int64
		if err := tx.Model(&attendanceModel.AttendanceSessionModel{}).
			Where(`attendance_session_university_id = ?
				AND attendance_session_year = ? AND attendance_session_semester = ?
				AND attendance_session_division = ? AND attendance_session_date = ?
				AND attendance_session_start_time = ? AND attendance_session_end_time = ?`,
				universityID, m.AttendanceSessionYear, m.AttendanceSessionSemester,
				m.AttendanceSessionDivision, m.AttendanceSessionDate,
				m.AttendanceSessionStartTime, m.AttendanceSessionEndTime).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check session duplication")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "attendance already recorded for this slot")
		}
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create attendance session")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "attendance session created", attendanceDTO.FromAttendanceSessionModel(m))
}

/* =========================
   LIST
   GET /admin/attendance?from=&to=&year=&semester=&division=
   ========================= */

func (h *AttendanceController) ListSessions(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&attendanceModel.AttendanceSessionModel{}).
		Where("attendance_session_university_id = ?", universityID)

	from, err := helper.ParseDateQuery(c, "from")
	if err != nil {
		return err
	}
	to, err := helper.ParseDateQuery(c, "to")
	if err != nil {
		return err
	}
	if !from.IsZero() {
		db = db.Where("attendance_session_date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("attendance_session_date <= ?", to)
	}
	if y := strings.TrimSpace(c.Query("year")); y != "" {
		db = db.Where("attendance_session_year = ?", y)
	}
	if s := strings.TrimSpace(c.Query("semester")); s != "" {
		db = db.Where("attendance_session_semester = ?", s)
	}
	if d := strings.TrimSpace(c.Query("division")); d != "" {
		db = db.Where("attendance_session_division = ?", strings.ToUpper(d))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count attendance sessions")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	var rows []attendanceModel.AttendanceSessionModel
	if err := db.
		Order("attendance_session_date DESC, attendance_session_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list attendance sessions")
	}

	out := make([]attendanceDTO.AttendanceSessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendanceDTO.FromAttendanceSessionModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   GET BY ID (with records)
   GET /admin/attendance/:id
   ========================= */

func (h *AttendanceController) GetSession(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findOwned(h.DB, universityID, id, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", attendanceDTO.FromAttendanceSessionModel(*m))
}

/* =========================
   PATCH ONE RECORD
   PATCH /admin/attendance/:id/records/:recordId
   ========================= */

func (h *AttendanceController) UpdateRecord(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	recordID, err := helper.ParseUUIDParam(c, "recordId")
	if err != nil {
		return err
	}

	var req attendanceDTO.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var updated attendanceModel.AttendanceRecordModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := h.findOwned(tx, universityID, id, false); err != nil {
			return err
		}
		var rec attendanceModel.AttendanceRecordModel
		if err := tx.
			Where("attendance_record_id = ? AND attendance_record_session_id = ?", recordID, id).
			First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "attendance record not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load attendance record")
		}
		rec.AttendanceRecordStatus = attendanceModel.AttendanceStatus(req.Status)
		if err := tx.Save(&rec).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update attendance record")
		}
		updated = rec
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "attendance record updated", attendanceDTO.FromAttendanceRecordModel(updated))
}

/* =========================
   SUMMARY
   GET /admin/attendance/:id/summary
   ========================= */

func (h *AttendanceController) SessionSummary(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findOwned(h.DB, universityID, id, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", attendanceDTO.SummaryFrom(m.AttendanceSessionID, m.Records))
}

/* =========================
   DELETE (session + records)
   DELETE /admin/attendance/:id
   ========================= */

func (h *AttendanceController) DeleteSession(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		m, err := h.findOwned(tx, universityID, id, false)
		if err != nil {
			return err
		}
		if err := tx.
			Where("attendance_record_session_id = ?", id).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete attendance records")
		}
		if err := tx.Delete(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to delete attendance session")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "attendance session deleted", fiber.Map{"attendance_session_id": id})
}
