// file: internals/features/academics/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentctl "campushub_backend/internals/features/academics/students/controller"
)

// StudentAdminRoutes registers student endpoints for ADMIN (full CRUD).
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := studentctl.NewStudentsController(db)

	grp := admin.Group("/students")
	grp.Get("/", ctl.ListStudents)
	grp.Get("/:id", ctl.GetStudent)
	grp.Post("/", ctl.CreateStudent)
	grp.Patch("/:id", ctl.UpdateStudent)
	grp.Delete("/:id", ctl.DeleteStudent)
}
