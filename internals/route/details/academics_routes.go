// file: internals/route/details/academics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomRoute "campushub_backend/internals/features/academics/classrooms/route"
	facultyRoute "campushub_backend/internals/features/academics/faculty/route"
	studentRoute "campushub_backend/internals/features/academics/students/route"
	subjectRoute "campushub_backend/internals/features/academics/subjects/route"
)

// AcademicsAdminRoutes mounts the reference-data CRUD surfaces.
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	subjectRoute.SubjectAdminRoutes(admin, db)
	facultyRoute.FacultyAdminRoutes(admin, db)
	classroomRoute.ClassroomAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
}
