package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultcontroller "studyabroad_backend/internals/features/assessments/results/controller"
)

func ResultUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := resultcontroller.NewResultController(db)

	user.Get("/results/me", ctrl.GetMyResults)
	user.Get("/results/exam/:examId/me", ctrl.GetMyResult)
}
