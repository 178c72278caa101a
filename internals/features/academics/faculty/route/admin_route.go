// file: internals/features/academics/faculty/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyctl "campushub_backend/internals/features/academics/faculty/controller"
)

// FacultyAdminRoutes registers faculty endpoints for ADMIN (full CRUD).
func FacultyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := facultyctl.NewFacultyController(db)

	grp := admin.Group("/faculty")
	grp.Get("/", ctl.ListFaculty)
	grp.Get("/:id", ctl.GetFaculty)
	grp.Post("/", ctl.CreateFaculty)
	grp.Patch("/:id", ctl.UpdateFaculty)
	grp.Delete("/:id", ctl.DeleteFaculty)
}
