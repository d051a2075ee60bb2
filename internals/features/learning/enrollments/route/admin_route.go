package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollcontroller "studyabroad_backend/internals/features/learning/enrollments/controller"
)

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := enrollcontroller.NewBatchStudentController(db)

	enrollments := admin.Group("/enrollments")
	enrollments.Post("/", ctrl.CreateEnrollment)
	enrollments.Get("/", ctrl.GetEnrollmentsFiltered)
	enrollments.Delete("/:id", ctrl.DeleteEnrollment)
}
