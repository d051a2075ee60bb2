package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BatchRoutes "studyabroad_backend/internals/features/learning/batches/route"
	EnrollmentRoutes "studyabroad_backend/internals/features/learning/enrollments/route"
	LiveClassRoutes "studyabroad_backend/internals/features/learning/liveclasses/route"
	NotificationRoutes "studyabroad_backend/internals/features/learning/notifications/route"
	VideoRoutes "studyabroad_backend/internals/features/learning/videos/route"
)

/* ===================== USER (PRIVATE) ===================== */
// Konten batch untuk student yang enrollment-nya masih aktif
func LearningUserRoutes(r fiber.Router, db *gorm.DB) {
	EnrollmentRoutes.EnrollmentUserRoutes(r, db)
	VideoRoutes.VideoUserRoutes(r, db)
	LiveClassRoutes.LiveClassUserRoutes(r, db)
	NotificationRoutes.NotificationUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */
func LearningAdminRoutes(r fiber.Router, db *gorm.DB) {
	BatchRoutes.BatchAdminRoutes(r, db)
	EnrollmentRoutes.EnrollmentAdminRoutes(r, db)
	VideoRoutes.VideoAdminRoutes(r, db)
	LiveClassRoutes.LiveClassAdminRoutes(r, db)
	NotificationRoutes.NotificationAdminRoutes(r, db)
}
