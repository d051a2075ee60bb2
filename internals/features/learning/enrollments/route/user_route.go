package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollcontroller "studyabroad_backend/internals/features/learning/enrollments/controller"
)

func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := enrollcontroller.NewBatchStudentController(db)

	user.Get("/my-batches", ctrl.GetMyBatches)
}
