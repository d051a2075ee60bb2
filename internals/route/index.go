package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyabroad_backend/internals/constants"
	authMiddleware "studyabroad_backend/internals/middlewares/auth"
	routeDetails "studyabroad_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthAllRoutes(app, db)

	// ===================== USER (/api/u) =====================
	// Student dan admin sama-sama lolos; guard per-data (enrollment,
	// publish flag, ownership) tetap jalan di controller/service.
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			"Akses khusus untuk student terdaftar",
			constants.StudentAndAbove...,
		),
	)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			"Akses khusus untuk admin",
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Learning routes...")
	routeDetails.LearningUserRoutes(user, db)
	routeDetails.LearningAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Assessment routes...")
	routeDetails.AssessmentUserRoutes(user, db)
	routeDetails.AssessmentAdminRoutes(admin, db)
}
