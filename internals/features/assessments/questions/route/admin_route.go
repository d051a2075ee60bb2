package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questioncontroller "studyabroad_backend/internals/features/assessments/questions/controller"
)

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := questioncontroller.NewQuestionController(db)

	questions := admin.Group("/questions")
	questions.Post("/", ctrl.CreateQuestion)
	questions.Get("/exam/:examId", ctrl.GetQuestionsByExam)
	questions.Put("/:id", ctrl.UpdateQuestion)
	questions.Patch("/:id/move", ctrl.MoveQuestion)
	questions.Delete("/:id", ctrl.DeleteQuestion)
}
