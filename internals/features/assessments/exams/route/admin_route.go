package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examcontroller "studyabroad_backend/internals/features/assessments/exams/controller"
)

func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := examcontroller.NewExamController(db)

	exams := admin.Group("/exams")
	exams.Post("/", ctrl.CreateExam)
	exams.Get("/batch/:batchId", ctrl.GetExamsByBatch)
	exams.Get("/:id", ctrl.GetExamByID)
	exams.Put("/:id", ctrl.UpdateExam)
	exams.Delete("/:id", ctrl.DeleteExam)
}
