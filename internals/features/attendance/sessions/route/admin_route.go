// file: internals/features/attendance/sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancectl "campushub_backend/internals/features/attendance/sessions/controller"
)

// AttendanceAdminRoutes registers attendance endpoints for ADMIN.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := attendancectl.NewAttendanceController(db)

	grp := admin.Group("/attendance")
	grp.Get("/", ctl.ListSessions)
	grp.Get("/:id", ctl.GetSession)
	grp.Get("/:id/summary", ctl.SessionSummary)
	grp.Post("/", ctl.CreateSession)
	grp.Patch("/:id/records/:recordId", ctl.UpdateRecord)
	grp.Delete("/:id", ctl.DeleteSession)
}
