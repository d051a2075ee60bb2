package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyabroad_backend/internals/features/assessments/exams/dto"
	"studyabroad_backend/internals/features/assessments/exams/model"
	enrollService "studyabroad_backend/internals/features/learning/enrollments/service"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// ➕ Create exam (admin)
func (ctrl *ExamController) CreateExam(c *fiber.Ctx) error {
	var body dto.CreateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	newExam := model.ExamModel{
		ExamBatchID:         body.ExamBatchID,
		ExamTitle:           body.ExamTitle,
		ExamDescription:     body.ExamDescription,
		ExamDurationMinutes: body.ExamDurationMinutes,
		ExamPassingMarks:    body.ExamPassingMarks,
	}
	if err := ctrl.DB.Create(&newExam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}
	return helper.JsonCreated(c, "Exam berhasil dibuat", dto.ToExamDTO(newExam))
}

// 📄 Get exams by batch (admin: semua; student: hanya published + enrolled)
func (ctrl *ExamController) GetExamsByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batchId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch id")
	}

	q := ctrl.DB.Model(&model.ExamModel{}).Where("exam_batch_id = ?", batchID)

	if !helper.IsAdmin(c) {
		studentID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		ok, err := enrollService.HasActiveEnrollment(ctrl.DB, studentID, batchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses batch sudah berakhir atau belum terdaftar")
		}
		q = q.Where("exam_is_published = ?", true)
	}

	var exams []model.ExamModel
	if err := q.Order("exam_created_at DESC").Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve exams")
	}

	out := make([]dto.ExamDTO, 0, len(exams))
	for _, e := range exams {
		out = append(out, dto.ToExamDTO(e))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// 🔍 Get exam by ID (admin)
func (ctrl *ExamController) GetExamByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	return helper.JsonOK(c, "ok", dto.ToExamDTO(exam))
}

// ✏️ Update exam (admin); juga toggle is_published / publish_result
func (ctrl *ExamController) UpdateExam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var body dto.UpdateExamRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "exam_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}

	if body.ExamTitle != nil {
		exam.ExamTitle = *body.ExamTitle
	}
	if body.ExamDescription != nil {
		exam.ExamDescription = *body.ExamDescription
	}
	if body.ExamDurationMinutes != nil {
		exam.ExamDurationMinutes = *body.ExamDurationMinutes
	}
	if body.ExamPassingMarks != nil {
		exam.ExamPassingMarks = body.ExamPassingMarks
	}
	if body.ExamIsPublished != nil {
		exam.ExamIsPublished = *body.ExamIsPublished
	}
	if body.ExamPublishResult != nil {
		exam.ExamPublishResult = *body.ExamPublishResult
	}

	if err := ctrl.DB.Save(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam")
	}
	return helper.JsonUpdated(c, "Exam berhasil diperbarui", dto.ToExamDTO(exam))
}

// ❌ Delete exam (admin)
func (ctrl *ExamController) DeleteExam(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	if err := ctrl.DB.Delete(&model.ExamModel{}, "exam_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete exam")
	}
	return helper.JsonDeleted(c, "Exam berhasil dihapus", nil)
}
