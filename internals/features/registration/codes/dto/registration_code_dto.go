// file: internals/features/registration/codes/dto/registration_code_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/registration/codes/model"
)

/* ========== REQUEST DTOs ========== */

type GenerateCodesRequest struct {
	Role      string     `json:"role" validate:"required,oneof=student faculty"`
	Count     int        `json:"count" validate:"required,min=1,max=500"`
	MaxUses   int        `json:"max_uses" validate:"required,min=1,max=10000"`
	ExpiresAt *time.Time `json:"expires_at" validate:"omitempty"`
}

type RedeemCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=16"`
}

/* ========== RESPONSE DTOs ========== */

type RegistrationCodeResponse struct {
	RegistrationCodeID uuid.UUID  `json:"registration_code_id"`
	BatchID            uuid.UUID  `json:"batch_id"`
	Role               string     `json:"role"`
	Code               string     `json:"code"`
	MaxUses            int        `json:"max_uses"`
	UsedCount          int        `json:"used_count"`
	ExpiresAt          *time.Time `json:"expires_at"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
}

type RedeemCodeResponse struct {
	RegistrationCodeID uuid.UUID `json:"registration_code_id"`
	Role               string    `json:"role"`
	UsedCount          int       `json:"used_count"`
	MaxUses            int       `json:"max_uses"`
}

/* ========== MAPPERS ========== */

func FromRegistrationCodeModel(m model.RegistrationCodeModel) RegistrationCodeResponse {
	return RegistrationCodeResponse{
		RegistrationCodeID: m.RegistrationCodeID,
		BatchID:            m.RegistrationCodeBatchID,
		Role:               m.RegistrationCodeRole,
		Code:               m.RegistrationCodeCode,
		MaxUses:            m.RegistrationCodeMaxUses,
		UsedCount:          m.RegistrationCodeUsedCount,
		ExpiresAt:          m.RegistrationCodeExpiresAt,
		IsActive:           m.RegistrationCodeIsActive,
		CreatedAt:          m.RegistrationCodeCreatedAt,
	}
}

func RedeemResponseFrom(m model.RegistrationCodeModel) RedeemCodeResponse {
	return RedeemCodeResponse{
		RegistrationCodeID: m.RegistrationCodeID,
		Role:               m.RegistrationCodeRole,
		UsedCount:          m.RegistrationCodeUsedCount,
		MaxUses:            m.RegistrationCodeMaxUses,
	}
}
