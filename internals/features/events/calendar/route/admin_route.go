// file: internals/features/events/calendar/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarctl "campushub_backend/internals/features/events/calendar/controller"
)

// CalendarAdminRoutes registers calendar-of-events endpoints for ADMIN.
func CalendarAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := calendarctl.NewCalendarEventsController(db)

	grp := admin.Group("/calendar")
	grp.Get("/", ctl.ListEvents)
	grp.Get("/:id", ctl.GetEvent)
	grp.Post("/", ctl.CreateEvent)
	grp.Patch("/:id", ctl.UpdateEvent)
	grp.Delete("/:id", ctl.DeleteEvent)
}
