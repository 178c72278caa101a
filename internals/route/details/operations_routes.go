// file: internals/route/details/operations_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "campushub_backend/internals/features/attendance/sessions/route"
	calendarRoute "campushub_backend/internals/features/events/calendar/route"
	codeRoute "campushub_backend/internals/features/registration/codes/route"
)

// OperationsAdminRoutes mounts the day-to-day operational surfaces.
func OperationsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	codeRoute.RegistrationCodeAdminRoutes(admin, db)
	calendarRoute.CalendarAdminRoutes(admin, db)
}
