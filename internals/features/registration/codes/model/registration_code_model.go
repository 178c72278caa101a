// file: internals/features/registration/codes/model/registration_code_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   RegistrationCodeModel — maps to registration_codes.
   Batch-minted signup codes, redeemed during onboarding.
   ======================================================= */

type RegistrationCodeModel struct {
	// PK
	RegistrationCodeID uuid.UUID `json:"registration_code_id" gorm:"type:uuid;primaryKey;column:registration_code_id;default:gen_random_uuid()"`

	// Tenant / scope
	RegistrationCodeUniversityID uuid.UUID `json:"registration_code_university_id" gorm:"type:uuid;not null;column:registration_code_university_id;index"`

	// Codes from the same generate call share a batch id.
	RegistrationCodeBatchID uuid.UUID `json:"registration_code_batch_id" gorm:"type:uuid;not null;column:registration_code_batch_id;index"`

	RegistrationCodeRole string `json:"registration_code_role" gorm:"type:varchar(10);not null;column:registration_code_role"`
	RegistrationCodeCode string `json:"registration_code_code" gorm:"type:varchar(16);not null;column:registration_code_code;uniqueIndex"`

	RegistrationCodeMaxUses   int `json:"registration_code_max_uses" gorm:"not null;column:registration_code_max_uses"`
	RegistrationCodeUsedCount int `json:"registration_code_used_count" gorm:"not null;default:0;column:registration_code_used_count"`

	RegistrationCodeExpiresAt *time.Time `json:"registration_code_expires_at" gorm:"column:registration_code_expires_at"`
	RegistrationCodeIsActive  bool       `json:"registration_code_is_active" gorm:"not null;default:true;column:registration_code_is_active"`

	// Timestamps (auto create/update)
	RegistrationCodeCreatedAt time.Time      `json:"registration_code_created_at" gorm:"column:registration_code_created_at;not null;autoCreateTime"`
	RegistrationCodeUpdatedAt time.Time      `json:"registration_code_updated_at" gorm:"column:registration_code_updated_at;not null;autoUpdateTime"`
	RegistrationCodeDeletedAt gorm.DeletedAt `json:"registration_code_deleted_at" gorm:"column:registration_code_deleted_at;index"`
}

func (RegistrationCodeModel) TableName() string {
	return "registration_codes"
}
