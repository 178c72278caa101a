// file: internals/features/timetable/templates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "campushub_backend/internals/features/timetable/templates/controller"
)

// TimetableAdminRoutes registers the timetable endpoints for ADMIN (full CRUD).
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := ttctl.NewTimetableTemplateController(db)

	grp := admin.Group("/timetable")
	grp.Get("/list", ctl.List)
	grp.Get("/bell-preview", ctl.BellPreview)

	grp.Get("/conflicts/faculty", ctl.CheckFaculty)
	grp.Get("/conflicts/classroom", ctl.CheckClassroom)
	grp.Get("/conflicts/class-teacher", ctl.CheckClassTeacher)

	grp.Get("/:id", ctl.GetByID)
	grp.Post("/create", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/:id/publish", ctl.Publish)
	grp.Post("/:id/unpublish", ctl.Unpublish)

	grp.Post("/:id/slots/assign", ctl.Assign)
	grp.Post("/:id/slots/unassign", ctl.Unassign)
}
