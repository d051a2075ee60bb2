package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttemptRoutes "studyabroad_backend/internals/features/assessments/attempts/route"
	ExamRoutes "studyabroad_backend/internals/features/assessments/exams/route"
	QuestionRoutes "studyabroad_backend/internals/features/assessments/questions/route"
	ResultRoutes "studyabroad_backend/internals/features/assessments/results/route"
)

/* ===================== USER (PRIVATE) ===================== */
// Ujian published + flow attempt + result (masih lewat gate publish_result)
func AssessmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ExamRoutes.ExamUserRoutes(r, db)
	AttemptRoutes.AttemptUserRoutes(r, db)
	ResultRoutes.ResultUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */
func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ExamRoutes.ExamAdminRoutes(r, db)
	QuestionRoutes.QuestionAdminRoutes(r, db)
	ResultRoutes.ResultAdminRoutes(r, db)
}
