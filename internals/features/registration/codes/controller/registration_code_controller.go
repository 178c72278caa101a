// file: internals/features/registration/codes/controller/registration_code_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	codeDTO "campushub_backend/internals/features/registration/codes/dto"
	codeModel "campushub_backend/internals/features/registration/codes/model"
	codeService "campushub_backend/internals/features/registration/codes/service"
	helper "campushub_backend/internals/helpers"
	helperAuth "campushub_backend/internals/helpers/auth"
)

type RegistrationCodesController struct {
	DB *gorm.DB
}

func NewRegistrationCodesController(db *gorm.DB) *RegistrationCodesController {
	return &RegistrationCodesController{DB: db}
}

/* =========================
   GENERATE BATCH
   POST /admin/registration-codes/generate
   ========================= */

func (h *RegistrationCodesController) GenerateBatch(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req codeDTO.GenerateCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "expires_at must be in the future")
	}

	batchID := uuid.New()
	rows := make([]codeModel.RegistrationCodeModel, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		code, err := codeService.NewCode()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to generate codes")
		}
		rows = append(rows, codeModel.RegistrationCodeModel{
			RegistrationCodeUniversityID: universityID,
			RegistrationCodeBatchID:      batchID,
			RegistrationCodeRole:         req.Role,
			RegistrationCodeCode:         code,
			RegistrationCodeMaxUses:      req.MaxUses,
			RegistrationCodeExpiresAt:    req.ExpiresAt,
			RegistrationCodeIsActive:     true,
		})
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				// astronomically unlikely collision; let the admin retry
				return fiber.NewError(fiber.StatusConflict, "code collision, retry the batch")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to store codes")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]codeDTO.RegistrationCodeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, codeDTO.FromRegistrationCodeModel(r))
	}
	return helper.JsonCreated(c, "registration codes generated", fiber.Map{
		"batch_id": batchID,
		"codes":    out,
	})
}

/* =========================
   LIST
   GET /admin/registration-codes?role=&batch_id=&active=
   ========================= */

func (h *RegistrationCodesController) ListCodes(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.Model(&codeModel.RegistrationCodeModel{}).
		Where("registration_code_university_id = ?", universityID)

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		db = db.Where("registration_code_role = ?", strings.ToLower(role))
	}
	if b := strings.TrimSpace(c.Query("batch_id")); b != "" {
		batchID, err := uuid.Parse(b)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "batch_id is not a valid uuid")
		}
		db = db.Where("registration_code_batch_id = ?", batchID)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true":
		db = db.Where("registration_code_is_active = TRUE")
	case "false":
		db = db.Where("registration_code_is_active = FALSE")
	case "":
		// no filter
	default:
		return fiber.NewError(fiber.StatusBadRequest, "active must be true or false")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count codes")
	}

	paging := helper.ResolvePaging(c, 50, 500)
	var rows []codeModel.RegistrationCodeModel
	if err := db.
		Order("registration_code_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list codes")
	}

	out := make([]codeDTO.RegistrationCodeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, codeDTO.FromRegistrationCodeModel(r))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

/* =========================
   DEACTIVATE
   POST /admin/registration-codes/:id/deactivate
   ========================= */

func (h *RegistrationCodesController) DeactivateCode(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var updated codeModel.RegistrationCodeModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m codeModel.RegistrationCodeModel
		if err := tx.
			Where("registration_code_id = ? AND registration_code_university_id = ?", id, universityID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "registration code not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load registration code")
		}
		if !m.RegistrationCodeIsActive {
			return fiber.NewError(fiber.StatusConflict, "registration code is already inactive")
		}
		m.RegistrationCodeIsActive = false
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to deactivate registration code")
		}
		updated = m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "registration code deactivated", codeDTO.FromRegistrationCodeModel(updated))
}

/* =========================
   REDEEM
   POST /admin/registration-codes/redeem
   Increments used_count behind a row lock; refuses inactive,
   expired and exhausted codes.
   ========================= */

func (h *RegistrationCodesController) RedeemCode(c *fiber.Ctx) error {
	universityID, err := helperAuth.GetUniversityIDFromToken(c)
	if err != nil {
		return err
	}

	var req codeDTO.RedeemCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var redeemed codeModel.RegistrationCodeModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m codeModel.RegistrationCodeModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("registration_code_university_id = ? AND registration_code_code = ?", universityID, req.Code).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "registration code not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load registration code")
		}
		if !m.RegistrationCodeIsActive {
			return fiber.NewError(fiber.StatusConflict, "registration code is inactive")
		}
		if m.RegistrationCodeExpiresAt != nil && m.RegistrationCodeExpiresAt.Before(time.Now()) {
			return fiber.NewError(fiber.StatusConflict, "registration code has expired")
		}
		if m.RegistrationCodeUsedCount >= m.RegistrationCodeMaxUses {
			return fiber.NewError(fiber.StatusConflict, "registration code is exhausted")
		}
		m.RegistrationCodeUsedCount++
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to redeem registration code")
		}
		redeemed = m
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "registration code redeemed", codeDTO.RedeemResponseFrom(redeemed))
}
