package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultcontroller "studyabroad_backend/internals/features/assessments/results/controller"
)

func ResultAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := resultcontroller.NewResultController(db)

	admin.Get("/results/exam/:examId", ctrl.GetResultsByExam)
}
