// file: internals/features/academics/subjects/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectctl "campushub_backend/internals/features/academics/subjects/controller"
)

// SubjectAdminRoutes registers subject endpoints for ADMIN (full CRUD).
func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := subjectctl.NewSubjectsController(db)

	grp := admin.Group("/subjects")
	grp.Get("/", ctl.ListSubjects)
	grp.Get("/:id", ctl.GetSubject)
	grp.Post("/", ctl.CreateSubject)
	grp.Patch("/:id", ctl.UpdateSubject)
	grp.Post("/:id/archive", ctl.ArchiveSubject)
	grp.Post("/:id/restore", ctl.RestoreSubject)
	grp.Delete("/:id", ctl.DeleteSubject)
}
