// file: internals/features/registration/codes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	codectl "campushub_backend/internals/features/registration/codes/controller"
)

// RegistrationCodeAdminRoutes registers signup-code endpoints for ADMIN.
func RegistrationCodeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := codectl.NewRegistrationCodesController(db)

	grp := admin.Group("/registration-codes")
	grp.Get("/", ctl.ListCodes)
	grp.Post("/generate", ctl.GenerateBatch)
	grp.Post("/redeem", ctl.RedeemCode)
	grp.Post("/:id/deactivate", ctl.DeactivateCode)
}
