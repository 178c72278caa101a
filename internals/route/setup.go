// file: internals/route/setup.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	middlewares "campushub_backend/internals/middlewares"
	authMiddleware "campushub_backend/internals/middlewares/auth"
	routeDetails "campushub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN (per university) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("the admin panel"),
			constants.AdminAndAbove...,
		),
		middlewares.WriteRateLimiter(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Timetable routes...")
	routeDetails.TimetableAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Operations routes...")
	routeDetails.OperationsAdminRoutes(admin, db)
}
