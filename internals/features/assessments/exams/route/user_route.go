package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examcontroller "studyabroad_backend/internals/features/assessments/exams/controller"
)

func ExamUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := examcontroller.NewExamController(db)

	user.Get("/exams/batch/:batchId", ctrl.GetExamsByBatch)
}
