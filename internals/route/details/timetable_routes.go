// file: internals/route/details/timetable_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableRoute "campushub_backend/internals/features/timetable/templates/route"
)

// TimetableAdminRoutes mounts the timetable template surface
// (templates, slots, publish state, conflict checks, bell preview).
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	timetableRoute.TimetableAdminRoutes(admin, db)
}
