// file: internals/features/academics/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomctl "campushub_backend/internals/features/academics/classrooms/controller"
)

// ClassroomAdminRoutes registers classroom endpoints for ADMIN (full CRUD).
func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := classroomctl.NewClassroomsController(db)

	grp := admin.Group("/classrooms")
	grp.Get("/", ctl.ListClassrooms)
	grp.Get("/:id", ctl.GetClassroom)
	grp.Post("/", ctl.CreateClassroom)
	grp.Patch("/:id", ctl.UpdateClassroom)
	grp.Delete("/:id", ctl.DeleteClassroom)
}
