package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptcontroller "studyabroad_backend/internals/features/assessments/attempts/controller"
)

func AttemptUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := attemptcontroller.NewAttemptController(db)

	attempts := user.Group("/attempts")
	attempts.Post("/exam/:examId/start", ctrl.StartAttempt)
	attempts.Get("/exam/:examId/me", ctrl.GetMyAttempt)
	attempts.Post("/:id/answer", ctrl.RecordAnswer)
	attempts.Post("/:id/submit", ctrl.SubmitAttempt)
}
