package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyabroad_backend/internals/features/assessments/questions/dto"
	"studyabroad_backend/internals/features/assessments/questions/model"
	"studyabroad_backend/internals/features/assessments/questions/service"
	helper "studyabroad_backend/internals/helpers"
)

var validate = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// ➕ Create question (admin); order_index otomatis di akhir urutan
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	orderIndex, err := service.NextOrderIndex(ctrl.DB, body.QuestionExamID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve question order")
	}

	newQuestion := model.QuestionModel{
		QuestionExamID:     body.QuestionExamID,
		QuestionText:       body.QuestionText,
		QuestionOptionA:    body.QuestionOptionA,
		QuestionOptionB:    body.QuestionOptionB,
		QuestionOptionC:    body.QuestionOptionC,
		QuestionOptionD:    body.QuestionOptionD,
		QuestionCorrect:    model.Option(body.QuestionCorrect),
		QuestionMarks:      body.QuestionMarks,
		QuestionOrderIndex: orderIndex,
	}
	if err := ctrl.DB.Create(&newQuestion).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	if err := service.SyncExamTotalMarks(ctrl.DB, body.QuestionExamID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam total marks")
	}
	return helper.JsonCreated(c, "Soal berhasil ditambahkan", dto.ToQuestionDTO(newQuestion))
}

// 📄 Get questions by exam (admin, termasuk kunci jawaban).
// Sebelum dikirim, urutan dicek dan diperbaiki bila duplikat/bolong.
func (ctrl *QuestionController) GetQuestionsByExam(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "examId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	if err := service.RepairOrderIndexes(ctrl.DB, examID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to repair question order")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.
		Where("question_exam_id = ?", examID).
		Order("question_order_index ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	out := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToQuestionDTO(q))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ✏️ Update question (admin)
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var q model.QuestionModel
	if err := ctrl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	if body.QuestionText != nil {
		q.QuestionText = *body.QuestionText
	}
	if body.QuestionOptionA != nil {
		q.QuestionOptionA = *body.QuestionOptionA
	}
	if body.QuestionOptionB != nil {
		q.QuestionOptionB = *body.QuestionOptionB
	}
	if body.QuestionOptionC != nil {
		q.QuestionOptionC = *body.QuestionOptionC
	}
	if body.QuestionOptionD != nil {
		q.QuestionOptionD = *body.QuestionOptionD
	}
	if body.QuestionCorrect != nil {
		q.QuestionCorrect = model.Option(*body.QuestionCorrect)
	}
	if body.QuestionMarks != nil {
		q.QuestionMarks = *body.QuestionMarks
	}

	if err := ctrl.DB.Save(&q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	if err := service.SyncExamTotalMarks(ctrl.DB, q.QuestionExamID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam total marks")
	}
	return helper.JsonUpdated(c, "Soal berhasil diperbarui", dto.ToQuestionDTO(q))
}

// ↕️ PATCH /questions/:id/move — adjacent swap, transaksional
func (ctrl *QuestionController) MoveQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var body dto.MoveQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.MoveQuestion(ctrl.DB, id, body.Direction); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to move question")
	}
	return helper.JsonUpdated(c, "Urutan soal diperbarui", nil)
}

// ❌ Delete question (admin)
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var q model.QuestionModel
	if err := ctrl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	if err := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if err := service.SyncExamTotalMarks(ctrl.DB, q.QuestionExamID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam total marks")
	}
	return helper.JsonDeleted(c, "Soal berhasil dihapus", nil)
}
